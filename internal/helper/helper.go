package helper

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/bwmarrin/discordgo"

	"github.com/r-khatri/resumatch/internal/ingest"
)

// IngestAttachment downloads an attachment to a temp file, extracts its
// text, and removes the file. Nothing is retained after the request.
func IngestAttachment(rawURL string) (string, error) {
	filePath, err := DownloadFile(rawURL)
	if err != nil {
		return "", err
	}
	defer os.Remove(filePath)

	text, err := ingest.ExtractText(filePath)
	if err != nil {
		return "", fmt.Errorf("document ingestion failed: %w", err)
	}
	return text, nil
}

// DownloadFile fetches a URL into a temp file, keeping the original
// extension so ingestion can pick the right parser.
func DownloadFile(rawURL string) (string, error) {
	resp, err := http.Get(rawURL)
	if err != nil {
		return "", fmt.Errorf("failed to download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("received non-200 response code: %d", resp.StatusCode)
	}

	ext := ""
	if u, err := url.Parse(rawURL); err == nil {
		ext = filepath.Ext(path.Base(u.Path))
	}

	file, err := os.CreateTemp("", "attachment-*"+ext)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err = io.Copy(file, resp.Body); err != nil {
		os.Remove(file.Name())
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	slog.Debug("File downloaded successfully", "path", file.Name())
	return file.Name(), nil
}

func HandleError(s *discordgo.Session, m *discordgo.MessageCreate, err error) {
	slog.Error("Processing error", "error", err)
	s.MessageReactionRemove(m.ChannelID, m.ID, "⏳", s.State.User.ID)
	s.MessageReactionAdd(m.ChannelID, m.ID, "❌")
	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Error: %v", err))
}

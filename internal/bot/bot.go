// Package bot is the interactive front-end: drop a resume into a channel
// with the job description as the message text, get the scorecard back.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/r-khatri/resumatch/internal/cleaner"
	"github.com/r-khatri/resumatch/internal/helper"
	"github.com/r-khatri/resumatch/internal/pipeline"
	"github.com/r-khatri/resumatch/pkg/types"
)

var resumeExtensions = []string{".pdf", ".docx", ".txt"}

var clean = cleaner.New()

type Bot struct {
	session     *discordgo.Session
	pipeline    *pipeline.Pipeline
	requiredExp float64
}

func New(token string, p *pipeline.Pipeline, requiredExp float64) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	if requiredExp <= 0 {
		requiredExp = pipeline.DefaultRequiredExp
	}
	bot := &Bot{
		session:     session,
		pipeline:    p,
		requiredExp: requiredExp,
	}
	session.AddHandler(bot.onMessageCreate)
	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent
	return bot, nil
}

func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("error opening Discord session: %w", err)
	}
	slog.Info("Bot is running...")
	return nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.ID == s.State.User.ID {
		return
	}
	for _, att := range m.Attachments {
		ext := strings.ToLower(filepath.Ext(att.Filename))
		for _, allowed := range resumeExtensions {
			if ext == allowed {
				slog.Info("Received resume attachment", "filename", att.Filename, "author", m.Author.Username)
				go b.processMatch(s, m, att.URL)
				return
			}
		}
	}
}

func (b *Bot) processMatch(s *discordgo.Session, m *discordgo.MessageCreate, url string) {
	s.MessageReactionAdd(m.ChannelID, m.ID, "⏳")

	jdText := strings.TrimSpace(m.Content)
	if jdText == "" {
		helper.HandleError(s, m, fmt.Errorf("include the job description as the message text alongside the resume"))
		return
	}

	resumeText, err := helper.IngestAttachment(url)
	if err != nil {
		helper.HandleError(s, m, err)
		return
	}

	result, err := b.pipeline.Run(context.Background(), resumeText, clean.HTML(jdText), pipeline.Options{
		CandidateName: m.Author.Username,
		RequiredExp:   b.requiredExp,
	})
	if err != nil {
		helper.HandleError(s, m, err)
		return
	}

	s.MessageReactionRemove(m.ChannelID, m.ID, "⏳", s.State.User.ID)
	s.MessageReactionAdd(m.ChannelID, m.ID, "✅")
	s.ChannelMessageSend(m.ChannelID, formatResult(result, b.requiredExp))
	slog.Info("Done processing!", "overall_score", result.Scores.OverallScore)
}

func formatResult(result *types.MatchResult, requiredExp float64) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "**Overall match: %.1f/100** (%s alignment)\n", result.Scores.OverallScore, alignmentBand(result.Scores.OverallScore))
	fmt.Fprintf(&sb, "Skills: %.1f/100, matched %d of %d required\n",
		result.Scores.SkillScore,
		len(result.MatchDetails.MatchedSkills),
		len(result.MatchDetails.MatchedSkills)+len(result.MatchDetails.MissingSkills))
	fmt.Fprintf(&sb, "Experience: %.1f/100 (%.1f years vs %.1f required)\n",
		result.Scores.ExperienceScore,
		result.CandidateProfile.ExtractedExperience,
		requiredExp)

	if len(result.MatchDetails.MissingSkills) > 0 {
		fmt.Fprintf(&sb, "Missing: %s\n", strings.Join(result.MatchDetails.MissingSkills, ", "))
	}
	sb.WriteString("\n")
	sb.WriteString(result.Explanation)

	msg := sb.String()
	if len(msg) > 2000 {
		msg = msg[:2000]
	}
	return msg
}

// alignmentBand mirrors the dashboard's verdict banding.
func alignmentBand(score float64) string {
	switch {
	case score >= 70:
		return "strong"
	case score >= 40:
		return "moderate"
	default:
		return "weak"
	}
}

// Package view derives the display model of the board from the store's jobs.
// Every text value leaving this package is already HTML-escaped.
package view

import (
	"html/template"
	"strings"
	"time"

	"job-board/internal/domain"

	"github.com/dustin/go-humanize"
)

// EmptyMessage is shown in place of the cards when the board has no jobs.
const EmptyMessage = "No jobs posted yet. Be the first to post one!"

// Card describes one rendered job.
type Card struct {
	ID          int64         `json:"id"`
	Title       template.HTML `json:"title"`
	Type        template.HTML `json:"type"`
	TypeClass   string        `json:"type_class"`
	Company     template.HTML `json:"company"`
	Location    template.HTML `json:"location"`
	Description template.HTML `json:"description"`
	Experience  template.HTML `json:"experience"`
	Applied     AppliedState  `json:"applied"`
	PostedAgo   string        `json:"posted_ago,omitempty"`
}

// AppliedState is the apply button's state.
type AppliedState struct {
	Applied  bool   `json:"applied"`
	Label    string `json:"label"`
	Tooltip  string `json:"tooltip,omitempty"`
	Disabled bool   `json:"disabled"`
}

// Model is the whole board. Cards is nil when Empty is set.
type Model struct {
	Empty        bool   `json:"empty"`
	EmptyMessage string `json:"empty_message,omitempty"`
	Count        int    `json:"count"`
	Cards        []Card `json:"cards,omitempty"`
}

// Render builds the board model. Card order follows jobs.
func Render(jobs []domain.Job, now time.Time) Model {
	if len(jobs) == 0 {
		return Model{Empty: true, EmptyMessage: EmptyMessage}
	}

	cards := make([]Card, 0, len(jobs))
	for _, job := range jobs {
		cards = append(cards, renderCard(job, now))
	}
	return Model{Count: len(jobs), Cards: cards}
}

func renderCard(job domain.Job, now time.Time) Card {
	card := Card{
		ID:          job.ID,
		Title:       escape(job.Title),
		Type:        escape(string(job.Type)),
		TypeClass:   BadgeClass(job.Type),
		Company:     escape(job.Company),
		Location:    escape(job.Location),
		Description: escape(job.Description),
		Experience:  escape(string(job.Experience)),
		Applied:     appliedState(job.Applied),
	}
	if !job.CreatedAt.IsZero() {
		card.PostedAgo = humanize.RelTime(job.CreatedAt, now, "ago", "from now")
	}
	return card
}

func appliedState(applied bool) AppliedState {
	if applied {
		return AppliedState{
			Applied:  true,
			Label:    "✓ Applied",
			Tooltip:  "You have already applied",
			Disabled: true,
		}
	}
	return AppliedState{Label: "Apply"}
}

// BadgeClass turns a job type into its CSS class, e.g. "Full Time" -> "full-time".
// Characters other than letters, digits and '-' are dropped.
func BadgeClass(t domain.JobType) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(string(t))) {
		switch {
		case r == ' ':
			b.WriteByte('-')
		case r == '-', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}
	return b.String()
}

func escape(s string) template.HTML {
	return template.HTML(template.HTMLEscapeString(s))
}

package telegram

import (
	"fmt"
	"strings"

	"go-jobfinder-bot/internal/database"
	"go-jobfinder-bot/internal/scraper"
)

// display cut-off for long descriptions; the stored record keeps the full text
const maxDescriptionRunes = 200

const welcomeText = "🤖 Welcome to Job Aggregator Bot!\n\n" +
	"I aggregate job postings from multiple job websites including:\n" +
	"• Indeed\n" +
	"• Glassdoor\n" +
	"• LinkedIn\n" +
	"• RemoteOK\n\n" +
	"Use the buttons below to get started:"

const helpText = "🔍 Job Search Bot Help\n\n" +
	"• /start - Show main menu\n" +
	"• /search <query> - Search for jobs (e.g. /search python developer)\n" +
	"• /saved - Show your saved jobs\n" +
	"• /help - Show this help message\n\n" +
	"You can also use the inline buttons in the main menu."

const searchPromptText = "🔍 Job Search\n\n" +
	"Please send me your job search query.\n" +
	"Example: python developer"

const searchUsageText = "Please provide a search term. Usage: /search <query>\n" +
	"Example: /search python developer"

func escapeMarkdown(text string) string {
	replacer := strings.NewReplacer(
		"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]", "(", "\\(",
		")", "\\)", "~", "\\~", "`", "\\`", ">", "\\>", "#", "\\#",
		"+", "\\+", "-", "\\-", "=", "\\=", "|", "\\|", "{", "\\{",
		"}", "\\}", ".", "\\.", "!", "\\!",
	)
	return replacer.Replace(text)
}

func truncateDescription(text string) string {
	runes := []rune(text)
	if len(runes) <= maxDescriptionRunes {
		return text
	}
	return string(runes[:maxDescriptionRunes]) + "..."
}

func formatJob(job scraper.Job) string {
	text := fmt.Sprintf("*%s* at %s\n", escapeMarkdown(job.Title), escapeMarkdown(job.Company))
	text += escapeMarkdown(fmt.Sprintf("📍 %s | 🏢 %s", job.Location, job.Source)) + "\n\n"
	text += escapeMarkdown(truncateDescription(job.Description)) + "\n\n"
	text += fmt.Sprintf("[Apply Here](%s)", job.URL)
	return text
}

func formatSavedJob(job database.SavedJob) string {
	text := fmt.Sprintf("*%s* at %s\n", escapeMarkdown(job.Title), escapeMarkdown(job.Company))
	text += escapeMarkdown(fmt.Sprintf("📍 %s | 🏢 %s", job.Location, job.Source)) + "\n\n"
	text += fmt.Sprintf("[View Job](%s)", job.URL)
	return text
}

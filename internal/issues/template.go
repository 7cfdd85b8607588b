// Package issues renders Markdown issue bodies for the Jira-to-GitHub sync
// workflow. Rendering is pure text substitution over a fixed set of named
// {placeholder} tokens; there is no control flow in the templates.
package issues

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed templates/issue_template.md
var defaultTemplate string

// Issue holds the Jira fields substituted into a body template. Zero-valued
// fields render as their documented fallbacks ("Unassigned", "None",
// "Not specified", ...), never as empty strings.
type Issue struct {
	BugKey           string
	BugType          string
	Summary          string
	Priority         string
	Status           string
	Reporter         string
	Assignee         string
	Components       []string
	Labels           []string
	AffectedVersions []string
	FixVersions      []string
	Description      string
	Environment      string
	Created          string
	Updated          string
}

// Attachment describes a file carried over from the Jira issue.
// GitHubURL is empty when the upload failed; the rendered line says so
// instead of linking nowhere.
type Attachment struct {
	Filename  string
	Size      int64 // bytes
	GitHubURL string
}

// Template is a Markdown issue-body template with {placeholder} tokens.
type Template struct {
	body string
}

// Default returns the template embedded in the binary.
func Default() *Template {
	return &Template{body: defaultTemplate}
}

// New wraps a caller-supplied template body.
func New(body string) *Template {
	return &Template{body: body}
}

// Render substitutes every placeholder in the template and returns the
// finished issue body. jiraBaseURL is joined with the bug key to build the
// {jira_url} backlink.
func (t *Template) Render(is Issue, jiraBaseURL string, attachments []Attachment) string {
	r := strings.NewReplacer(
		"{bug_type}", orFallback(is.BugType, "Bug"),
		"{summary}", orFallback(is.Summary, "No title"),
		"{bug_key}", is.BugKey,
		"{bug_key_lower}", strings.ToLower(is.BugKey),
		"{jira_url}", jiraBaseURL+"/browse/"+is.BugKey,
		"{priority}", orFallback(is.Priority, "Medium"),
		"{status}", orFallback(is.Status, "Unknown"),
		"{reporter}", orFallback(is.Reporter, "Unknown"),
		"{assignee}", orFallback(is.Assignee, "Unassigned"),
		"{components}", joinOrFallback(is.Components, "None"),
		"{labels}", codeJoinOrFallback(is.Labels, "None"),
		"{versions}", joinOrFallback(is.AffectedVersions, "Not specified"),
		"{fix_versions}", joinOrFallback(is.FixVersions, "Not specified"),
		"{description}", orFallback(is.Description, "No description provided"),
		"{environment}", orFallback(is.Environment, "Not specified"),
		"{attachments_section}", attachmentsSection(attachments),
		"{created}", orFallback(is.Created, "Unknown"),
		"{updated}", orFallback(is.Updated, "Unknown"),
	)

	return r.Replace(t.body)
}

// attachmentsSection builds the optional attachments block. No attachments
// means no section at all, not an empty heading.
func attachmentsSection(attachments []Attachment) string {
	if len(attachments) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n## Attachments\n\n")
	for _, att := range attachments {
		sizeKB := float64(att.Size) / 1024
		if att.GitHubURL != "" {
			fmt.Fprintf(&b, "- **[%s](%s)** - %.2f KB\n",
				att.Filename, att.GitHubURL, sizeKB)
		} else {
			fmt.Fprintf(&b, "- **%s** - %.2f KB *(upload failed)*\n",
				att.Filename, sizeKB)
		}
	}

	return b.String()
}

func orFallback(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func joinOrFallback(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}

// codeJoinOrFallback renders each item as inline code, the way labels are
// shown in the synced issues.
func codeJoinOrFallback(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = "`" + item + "`"
	}
	return strings.Join(quoted, ", ")
}

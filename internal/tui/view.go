package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"unhook/internal/constants"
	"unhook/internal/progress"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case constants.StateJourneys:
		content = m.viewJourneys()
	case constants.StateDaily:
		content = m.viewDaily()
	case constants.StateTimeline:
		content = m.viewTimeline()
	case constants.StateOnboarding:
		content = m.viewOnboarding()
	case constants.StateNewJourney:
		content = m.form.View()
		if m.formError != "" {
			content = lipgloss.JoinVertical(lipgloss.Left, errStyle.Render(m.formError), content)
		}
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		m.help.View(m.keys),
	)
}

func (m Model) viewJourneys() string {
	return docStyle.Render(m.journeyList.View())
}

func (m Model) viewDaily() string {
	journey, ok := m.activeJourney()
	if !ok {
		return docStyle.Render(errStyle.Render("Journey not found."))
	}
	sub, ok := m.activeSubstance()
	if !ok {
		return docStyle.Render(errStyle.Render("Unknown substance."))
	}

	day := progress.DayCount(journey.StartDate, time.Now())
	milestone := progress.MilestoneAtOrBefore(sub, day)

	var b strings.Builder

	header := fmt.Sprintf("%s  %s", sub.Icon, sub.Name)
	card := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(header),
		dayNumberStyle.Render(fmt.Sprintf("Day %d", day)),
		reasonStyle.Render(fmt.Sprintf("“%s”", journey.Reason)),
	)
	b.WriteString(dayCardStyle.Render(card))
	b.WriteString("\n")

	b.WriteString(sectionTitleStyle.Render(milestone.Title))
	b.WriteString("\n\n")

	sections := []struct {
		label string
		body  string
	}{
		{"🫀 Your body", milestone.Physical},
		{"🧠 Your mind", milestone.Mental},
		{"💭 Reframe", milestone.Reframe},
		{"⭐ Remember", milestone.Reminder},
	}
	for _, s := range sections {
		if s.body == "" {
			continue
		}
		b.WriteString(sectionTitleStyle.Render(s.label))
		b.WriteString("\n")
		b.WriteString(sectionBodyStyle.Render(s.body))
		b.WriteString("\n")
	}

	if next, ok := progress.NextMilestone(sub, day); ok {
		b.WriteString(upcomingStyle.Render(fmt.Sprintf("Next up: day %d — %s", next.Day, next.Title)))
		b.WriteString("\n")
	}

	if journey.LastCheckIn != nil {
		b.WriteString(upcomingStyle.Render("Last check-in: " + journey.LastCheckIn.Local().Format("Mon Jan 2 15:04")))
		b.WriteString("\n")
	}

	if m.statusMessage != "" {
		b.WriteString("\n")
		b.WriteString(reachedStyle.Render(m.statusMessage))
		b.WriteString("\n")
	}

	b.WriteString(helpHintStyle.Render("[c] check in  [t] timeline  [d] delete  [esc] back"))

	return docStyle.Render(b.String())
}

func (m Model) viewTimeline() string {
	journey, ok := m.activeJourney()
	if !ok {
		return docStyle.Render(errStyle.Render("Journey not found."))
	}
	sub, _ := m.activeSubstance()

	day := progress.DayCount(journey.StartDate, time.Now())
	current := progress.MilestoneAtOrBefore(sub, day)

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s  %s — day %d", sub.Icon, sub.Name, day)))
	b.WriteString("\n")

	for _, ms := range sub.Timeline {
		var line string
		switch {
		case ms.Day == current.Day:
			line = currentStyle.Render(fmt.Sprintf("▶ ● Day %-3d %s", ms.Day, ms.Title))
		case ms.Day <= day:
			line = reachedStyle.Render(fmt.Sprintf("  ● Day %-3d %s", ms.Day, ms.Title))
		default:
			line = upcomingStyle.Render(fmt.Sprintf("  ○ Day %-3d %s", ms.Day, ms.Title))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if next, ok := progress.NextMilestone(sub, day); ok {
		b.WriteString("\n")
		b.WriteString(upcomingStyle.Render(fmt.Sprintf("%d day(s) until %q", next.Day-day, next.Title)))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
		b.WriteString(reachedStyle.Render("You've reached every milestone on the map. Keep going."))
		b.WriteString("\n")
	}

	b.WriteString(helpHintStyle.Render("[esc] back"))

	return docStyle.Render(b.String())
}

func (m Model) viewOnboarding() string {
	sub, ok := m.activeSubstance()
	if !ok {
		return docStyle.Render(errStyle.Render("Journey not found."))
	}

	sections := sub.Introduction.Sections
	if m.introPage >= len(sections) {
		return ""
	}
	section := sections[m.introPage]

	var b strings.Builder
	b.WriteString(titleStyle.Render(sub.Introduction.Title))
	b.WriteString("\n")
	b.WriteString(sectionTitleStyle.Render(section.Title))
	b.WriteString("\n\n")
	b.WriteString(sectionBodyStyle.Render(section.Content))
	b.WriteString("\n\n")
	b.WriteString(upcomingStyle.Render(fmt.Sprintf("— %d/%d —", m.introPage+1, len(sections))))
	b.WriteString("\n")

	if m.formError != "" {
		b.WriteString(errStyle.Render(m.formError))
		b.WriteString("\n")
	}

	hint := "[enter] next  [←] back  [esc] later"
	if m.introPage == len(sections)-1 {
		hint = "[enter] begin day 1  [←] back  [esc] later"
	}
	b.WriteString(helpHintStyle.Render(hint))

	return docStyle.Render(b.String())
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			errStyle.Render("Delete this journey? Its progress and reminders go with it."),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

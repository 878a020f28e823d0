package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/fitbook/pkg/command"
	"github.com/aretw0/fitbook/pkg/person"
)

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")). // Blue
			Bold(true)

	feedbackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82")) // Green

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")) // Yellow

	indexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(4)

	nameStyle = lipgloss.NewStyle().Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("111")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// printResult writes the feedback of res and, for commands that change
// what is displayed, the client list.
func printResult(w io.Writer, res command.Result, shown []*person.Person) {
	fmt.Fprintln(w, feedbackStyle.Render(res.Feedback))

	switch {
	case res.ShowHelp():
		fmt.Fprintln(w, helpStyle.Render(command.HelpText()))
	case res.Kind == command.KindPersonsListed,
		res.Kind == command.KindExercisesAdded,
		res.Kind == command.KindExercisesDeleted,
		res.Kind == command.KindPersonEdited:
		printPersons(w, shown)
	}
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render(err.Error()))
}

func printNotice(w io.Writer, msg string) {
	fmt.Fprintln(w, noticeStyle.Render(msg))
}

// printPersons renders one card per client, numbered from 1 as the
// commands expect.
func printPersons(w io.Writer, persons []*person.Person) {
	for i, p := range persons {
		fmt.Fprintln(w, renderPerson(i+1, p))
	}
}

func renderPerson(index int, p *person.Person) string {
	var b strings.Builder
	b.WriteString(indexStyle.Render(fmt.Sprintf("%d.", index)))
	b.WriteString(nameStyle.Render(string(p.Name())))
	for _, t := range p.Tags() {
		b.WriteString(" ")
		b.WriteString(tagStyle.Render(string(t)))
	}
	b.WriteString("\n")

	line := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString("    ")
		b.WriteString(labelStyle.Render(label + ":"))
		b.WriteString(" ")
		b.WriteString(value)
		b.WriteString("\n")
	}

	line("Phone", string(p.Phone()))
	line("Email", string(p.Email()))
	line("Address", string(p.Address()))
	if latest, ok := p.LatestWeight(); ok {
		line("Weight", fmt.Sprintf("%s (%s)", latest.Value, latest.Time.Format(person.WeightDateLayout)))
	}
	if p.Height().IsSet() {
		line("Height", p.Height().String())
	}
	line("Note", string(p.Note()))

	var exercises []string
	for _, e := range p.Exercises().Sorted() {
		exercises = append(exercises, e.String())
	}
	line("Exercises", strings.Join(exercises, ", "))

	return strings.TrimRight(b.String(), "\n")
}

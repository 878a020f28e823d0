package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/fitbook/pkg/person"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all clients",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp(cmd.Context(), cmd, withReadOnlyDefault(cmd))
		persons := app.FilteredPersonList()

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(clientViews(persons)); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}
		printPersons(os.Stdout, persons)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}

// clientView is the JSON shape printed by `list --json`.
type clientView struct {
	Index     int               `json:"index"`
	Name      string            `json:"name"`
	Phone     string            `json:"phone"`
	Email     string            `json:"email,omitempty"`
	Address   string            `json:"address,omitempty"`
	Tags      []string          `json:"tags,omitempty"`
	Weight    *float64          `json:"weight,omitempty"`
	Height    *float64          `json:"height,omitempty"`
	Note      string            `json:"note,omitempty"`
	Exercises []person.Exercise `json:"exercises,omitempty"`
}

func clientViews(persons []*person.Person) []clientView {
	views := make([]clientView, 0, len(persons))
	for i, p := range persons {
		v := clientView{
			Index:     i + 1,
			Name:      string(p.Name()),
			Phone:     string(p.Phone()),
			Email:     string(p.Email()),
			Address:   string(p.Address()),
			Note:      string(p.Note()),
			Exercises: p.Exercises().Sorted(),
		}
		for _, t := range p.Tags() {
			v.Tags = append(v.Tags, string(t))
		}
		if latest, ok := p.LatestWeight(); ok {
			w := float64(latest.Value)
			v.Weight = &w
		}
		if p.Height().IsSet() {
			h := float64(p.Height())
			v.Height = &h
		}
		views = append(views, v)
	}
	return views
}

package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/fitbook/pkg/command"
	"github.com/aretw0/fitbook/pkg/person"
)

func TestClientViews(t *testing.T) {
	t0 := time.Date(2024, 3, 27, 10, 0, 0, 0, time.Local)
	persons := []*person.Person{
		person.NewBuilder("Alex Yeoh", "87438807").Tags("friends").Build(),
		person.NewBuilder("Bernice Yu", "99272758").
			Weights(person.NewWeightMap().Put(t0, 60).Put(t0.Add(time.Hour), 59.5)).
			Height(165).
			Build(),
	}

	views := clientViews(persons)
	require.Len(t, views, 2)

	assert.Equal(t, 1, views[0].Index)
	assert.Equal(t, []string{"friends"}, views[0].Tags)
	assert.Nil(t, views[0].Weight)
	assert.Nil(t, views[0].Height)

	require.NotNil(t, views[1].Weight)
	assert.Equal(t, 59.5, *views[1].Weight, "latest weight is shown")
	require.NotNil(t, views[1].Height)
	assert.Equal(t, 165.0, *views[1].Height)
}

func TestPrintResult(t *testing.T) {
	alex := person.NewBuilder("Alex Yeoh", "87438807").Note("Knee injury").Build()

	t.Run("List Shows Clients", func(t *testing.T) {
		var buf bytes.Buffer
		printResult(&buf, command.Result{Kind: command.KindPersonsListed, Feedback: "Listed all clients"}, []*person.Person{alex})
		out := buf.String()
		assert.Contains(t, out, "Listed all clients")
		assert.Contains(t, out, "Alex Yeoh")
		assert.Contains(t, out, "Knee injury")
	})

	t.Run("Help Shows Usage", func(t *testing.T) {
		var buf bytes.Buffer
		printResult(&buf, command.Result{Kind: command.KindHelpRequested, Feedback: command.MessageShowingHelp}, nil)
		assert.Contains(t, buf.String(), command.AddWord)
	})

	t.Run("Deletion Prints Feedback Only", func(t *testing.T) {
		var buf bytes.Buffer
		printResult(&buf, command.Result{Kind: command.KindPersonDeleted, Feedback: "Deleted Client: Alex Yeoh"}, []*person.Person{alex})
		assert.NotContains(t, buf.String(), "Knee injury")
	})
}

package fs

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/fitbook/pkg/core"
	"github.com/aretw0/fitbook/pkg/person"
)

func sampleBook(t *testing.T) *core.AddressBook {
	t.Helper()
	t0 := time.Date(2024, 3, 27, 10, 15, 30, 0, time.Local)

	alice := person.NewBuilder("Alice Pauline", "94351253").
		Email("alice@example.com").
		Address("123, Jurong West Ave 6, #08-111").
		Tags("friends", "gym").
		Build()
	benson := person.NewBuilder("Benson Meier", "98765432").
		Weights(person.NewWeightMap().Put(t0, 80).Put(t0.Add(24*time.Hour), 79.5)).
		Height(180).
		Note("Prefers mornings").
		Exercises(person.NewExerciseSet(
			person.Exercise{Name: "squats", Sets: 4, Reps: 8, BreakSeconds: 90},
			person.Exercise{Name: "bench press", Sets: 3, Reps: 10, BreakSeconds: 120},
		)).
		Build()

	ab, err := core.NewAddressBook(alice, benson)
	require.NoError(t, err)
	return ab
}

func assertSameBook(t *testing.T, want, got *core.AddressBook) {
	t.Helper()
	wp, gp := want.Persons(), got.Persons()
	require.Len(t, gp, len(wp))
	for i := range wp {
		assert.Equal(t, wp[i].Formatted(), gp[i].Formatted())
		assert.Equal(t, wp[i].Note(), gp[i].Note())
		assert.Equal(t, wp[i].Exercises().Sorted(), gp[i].Exercises().Sorted())

		we, ge := wp[i].Weights().Entries(), gp[i].Weights().Entries()
		require.Len(t, ge, len(we))
		for j := range we {
			assert.True(t, we[j].Time.Equal(ge[j].Time), "weight %d time", j)
			assert.Equal(t, we[j].Value, ge[j].Value)
		}
	}
}

func TestSerializers_PreserveBook(t *testing.T) {
	book := sampleBook(t)

	for ext, s := range DefaultSerializers() {
		t.Run(ext, func(t *testing.T) {
			data, err := s.Encode(book)
			require.NoError(t, err)

			got, err := s.Decode(bytes.NewReader(data))
			require.NoError(t, err)
			assertSameBook(t, book, got)
		})
	}
}

func TestSerializerFor(t *testing.T) {
	s, err := SerializerFor("data/fitbook.YAML", "")
	require.NoError(t, err)
	assert.IsType(t, YAMLSerializer{}, s)

	s, err = SerializerFor("data/fitbook.dat", "csv")
	require.NoError(t, err)
	assert.IsType(t, CSVSerializer{}, s)

	_, err = SerializerFor("data/fitbook.xml", "")
	assert.Error(t, err)
}

func TestJSONSerializer_Format(t *testing.T) {
	data, err := JSONSerializer{}.Encode(sampleBook(t))
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `"name": "Benson Meier"`)
	assert.Contains(t, out, `"2024-03-27 10:15:30": 80`)
	assert.NotContains(t, out, `"email": ""`, "empty optional fields are omitted")
}

func TestDecode_RejectsInvalidData(t *testing.T) {
	tests := []struct {
		name string
		s    Serializer
		in   string
	}{
		{"json bad phone", JSONSerializer{}, `{"persons":[{"name":"Alice","phone":"12"}]}`},
		{"json unknown field", JSONSerializer{}, `{"persons":[],"extra":1}`},
		{"json duplicate", JSONSerializer{}, `{"persons":[{"name":"Alice","phone":"123"},{"name":"alice","phone":"456"}]}`},
		{"json bad weight date", JSONSerializer{}, `{"persons":[{"name":"Alice","phone":"123","weights":{"yesterday":70}}]}`},
		{"json weight out of range", JSONSerializer{}, `{"persons":[{"name":"Alice","phone":"123","weights":{"2024-03-27 10:15:30":5001}}]}`},
		{"yaml bad tag", YAMLSerializer{}, "persons:\n  - name: Alice\n    phone: \"123\"\n    tags: [\"best friend\"]\n"},
		{"yaml zero sets", YAMLSerializer{}, "persons:\n  - name: Alice\n    phone: \"123\"\n    exercises:\n      - {name: squats, sets: 0, reps: 8, break: 60}\n"},
		{"csv missing phone column", CSVSerializer{}, "name\nAlice\n"},
		{"csv bad exercise", CSVSerializer{}, "name,phone,exercises\nAlice,123,squats:4\n"},
		{"csv bad height", CSVSerializer{}, "name,phone,height\nAlice,123,tall\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.s.Decode(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, ErrDataFormat)
		})
	}
}

func TestCSVSerializer_PartialColumns(t *testing.T) {
	in := "Name,Phone,Tags\nAlice Pauline,94351253,friends;gym\nBob Choo,22222222,\n"

	ab, err := CSVSerializer{}.Decode(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 2, ab.Len())

	alice := ab.Persons()[0]
	assert.Equal(t, []person.Tag{"friends", "gym"}, alice.Tags())
	assert.False(t, alice.Height().IsSet())
	assert.Empty(t, ab.Persons()[1].Tags())
}

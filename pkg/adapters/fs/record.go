package fs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aretw0/fitbook/pkg/core"
	"github.com/aretw0/fitbook/pkg/person"
)

// ErrDataFormat is returned when a data file holds values that do not pass
// validation.
var ErrDataFormat = errors.New("data file is not in the correct format")

// bookRecord is the stored form of an address book, shared by every
// serializer.
type bookRecord struct {
	Persons []personRecord `json:"persons" yaml:"persons"`
}

type personRecord struct {
	Name      string             `json:"name" yaml:"name"`
	Phone     string             `json:"phone" yaml:"phone"`
	Email     string             `json:"email,omitempty" yaml:"email,omitempty"`
	Address   string             `json:"address,omitempty" yaml:"address,omitempty"`
	Weights   map[string]float64 `json:"weights,omitempty" yaml:"weights,omitempty"`
	Height    float64            `json:"height,omitempty" yaml:"height,omitempty"`
	Note      string             `json:"note,omitempty" yaml:"note,omitempty"`
	Tags      []string           `json:"tags,omitempty" yaml:"tags,omitempty"`
	Exercises []exerciseRecord   `json:"exercises,omitempty" yaml:"exercises,omitempty"`
}

type exerciseRecord struct {
	Name  string `json:"name" yaml:"name"`
	Sets  int    `json:"sets" yaml:"sets"`
	Reps  int    `json:"reps" yaml:"reps"`
	Break int    `json:"break" yaml:"break"`
}

func newBookRecord(ab *core.AddressBook) *bookRecord {
	persons := ab.Persons()
	rec := &bookRecord{Persons: make([]personRecord, 0, len(persons))}
	for _, p := range persons {
		rec.Persons = append(rec.Persons, newPersonRecord(p))
	}
	return rec
}

func newPersonRecord(p *person.Person) personRecord {
	r := personRecord{
		Name:    string(p.Name()),
		Phone:   string(p.Phone()),
		Email:   string(p.Email()),
		Address: string(p.Address()),
		Height:  float64(p.Height()),
		Note:    string(p.Note()),
	}
	if entries := p.Weights().Entries(); len(entries) > 0 {
		r.Weights = make(map[string]float64, len(entries))
		for _, e := range entries {
			r.Weights[e.Time.Format(person.WeightDateLayout)] = float64(e.Value)
		}
	}
	for _, t := range p.Tags() {
		r.Tags = append(r.Tags, string(t))
	}
	for _, e := range p.Exercises().Sorted() {
		r.Exercises = append(r.Exercises, exerciseRecord{Name: e.Name, Sets: e.Sets, Reps: e.Reps, Break: e.BreakSeconds})
	}
	return r
}

// toAddressBook validates every record and builds the address book.
func (b *bookRecord) toAddressBook() (*core.AddressBook, error) {
	persons := make([]*person.Person, 0, len(b.Persons))
	for i, r := range b.Persons {
		p, err := r.toPerson()
		if err != nil {
			return nil, fmt.Errorf("%w: client %d: %v", ErrDataFormat, i+1, err)
		}
		persons = append(persons, p)
	}
	ab, err := core.NewAddressBook(persons...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataFormat, err)
	}
	return ab, nil
}

func (r personRecord) toPerson() (*person.Person, error) {
	if !person.IsValidName(r.Name) {
		return nil, errors.New(person.NameConstraints)
	}
	if !person.IsValidPhone(r.Phone) {
		return nil, errors.New(person.PhoneConstraints)
	}
	if r.Email != "" && !person.IsValidEmail(r.Email) {
		return nil, errors.New(person.EmailConstraints)
	}
	if r.Address != "" && !person.IsValidAddress(r.Address) {
		return nil, errors.New(person.AddressConstraints)
	}
	if r.Height < 0 {
		return nil, errors.New(person.HeightConstraints)
	}

	weights, err := r.weightMap()
	if err != nil {
		return nil, err
	}

	tags := make([]person.Tag, 0, len(r.Tags))
	for _, t := range r.Tags {
		if !person.IsValidTag(t) {
			return nil, errors.New(person.TagConstraints)
		}
		tags = append(tags, person.Tag(t))
	}

	exercises := make([]person.Exercise, 0, len(r.Exercises))
	for _, e := range r.Exercises {
		if err := e.validate(); err != nil {
			return nil, err
		}
		exercises = append(exercises, person.Exercise{
			Name:         strings.ToLower(e.Name),
			Sets:         e.Sets,
			Reps:         e.Reps,
			BreakSeconds: e.Break,
		})
	}

	return person.NewBuilder(person.Name(r.Name), person.Phone(r.Phone)).
		Email(person.Email(r.Email)).
		Address(person.Address(r.Address)).
		Weights(weights).
		Height(person.Height(r.Height)).
		Note(person.Note(r.Note)).
		Tags(tags...).
		Exercises(person.NewExerciseSet(exercises...)).
		Build(), nil
}

func (r personRecord) weightMap() (person.WeightMap, error) {
	keys := make([]string, 0, len(r.Weights))
	for k := range r.Weights {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]person.WeightEntry, 0, len(keys))
	for _, k := range keys {
		when, err := time.ParseInLocation(person.WeightDateLayout, k, time.Local)
		if err != nil {
			return person.WeightMap{}, errors.New(person.WeightDateConstraints)
		}
		w := person.Weight(r.Weights[k])
		if !w.InRange(person.WeightRange{Min: 0, Max: person.MaxWeight}) {
			return person.WeightMap{}, errors.New(person.WeightConstraints)
		}
		entries = append(entries, person.NewWeightEntry(when, w))
	}
	return person.NewWeightMap(entries...), nil
}

func (e exerciseRecord) validate() error {
	switch {
	case strings.TrimSpace(e.Name) == "":
		return errors.New(person.ExerciseNameConstraint)
	case e.Sets <= 0:
		return errors.New(person.ExerciseSetsConstraint)
	case e.Reps <= 0:
		return errors.New(person.ExerciseRepsConstraint)
	case e.Break < 0:
		return errors.New(person.ExerciseBreakConstraint)
	}
	return nil
}

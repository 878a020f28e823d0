package person

import (
	"sort"
	"strings"
)

// Person is an immutable client record. Edits go through Builder and
// produce a new *Person; the model tracks persons by pointer identity.
type Person struct {
	name      Name
	phone     Phone
	email     Email
	address   Address
	weights   WeightMap
	height    Height
	note      Note
	tags      []Tag
	exercises ExerciseSet
}

func (p *Person) Name() Name { return p.name }
func (p *Person) Phone() Phone { return p.phone }
func (p *Person) Email() Email { return p.email }
func (p *Person) Address() Address { return p.address }
func (p *Person) Weights() WeightMap { return p.weights }
func (p *Person) Height() Height { return p.height }
func (p *Person) Note() Note { return p.note }
func (p *Person) Exercises() ExerciseSet { return p.exercises }
func (p *Person) HasWeight() bool { return !p.weights.IsEmpty() }
func (p *Person) LatestWeight() (WeightEntry, bool) { return p.weights.Latest() }

// Tags returns the client's tags sorted by name. The slice is a copy.
func (p *Person) Tags() []Tag {
	out := make([]Tag, len(p.tags))
	copy(out, p.tags)
	return out
}

// HasTag reports whether the client carries t.
func (p *Person) HasTag(t Tag) bool {
	for _, cur := range p.tags {
		if cur == t {
			return true
		}
	}
	return false
}

// IsSamePerson reports whether other represents the same client. This is
// the weaker notion of equality used for duplicate detection.
func (p *Person) IsSamePerson(other *Person) bool {
	if p == other {
		return true
	}
	return other != nil && strings.EqualFold(string(p.name), string(other.name))
}

// Equal reports whether both persons hold identical field values.
func (p *Person) Equal(other *Person) bool {
	if p == other {
		return true
	}
	if other == nil {
		return false
	}
	if p.name != other.name || p.phone != other.phone || p.email != other.email ||
		p.address != other.address || p.height != other.height || p.note != other.note {
		return false
	}
	if !p.weights.Equal(other.weights) || len(p.tags) != len(other.tags) {
		return false
	}
	for i := range p.tags {
		if p.tags[i] != other.tags[i] {
			return false
		}
	}
	a, b := p.exercises.Sorted(), other.exercises.Sorted()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Formatted renders the identifying fields for user feedback, e.g.
// "Alex Yeoh; Phone: 87438807; Email: alex@example.com; Tags: [friends]".
func (p *Person) Formatted() string {
	var b strings.Builder
	b.WriteString(string(p.name))
	b.WriteString("; Phone: ")
	b.WriteString(string(p.phone))
	if p.email != "" {
		b.WriteString("; Email: ")
		b.WriteString(string(p.email))
	}
	if p.address != "" {
		b.WriteString("; Address: ")
		b.WriteString(string(p.address))
	}
	if len(p.tags) > 0 {
		b.WriteString("; Tags: ")
		for _, t := range p.tags {
			b.WriteString(t.String())
		}
	}
	return b.String()
}

func (p *Person) String() string { return p.Formatted() }

// Builder assembles a Person. The zero Builder is not usable; start from
// NewBuilder or From.
type Builder struct {
	p Person
}

// NewBuilder starts a person with the two mandatory fields.
func NewBuilder(name Name, phone Phone) *Builder {
	return &Builder{p: Person{name: name, phone: phone, exercises: NewExerciseSet()}}
}

// From starts a builder holding a copy of p.
func From(p *Person) *Builder {
	cp := *p
	cp.tags = p.Tags()
	return &Builder{p: cp}
}

func (b *Builder) Name(n Name) *Builder { b.p.name = n; return b }
func (b *Builder) Phone(ph Phone) *Builder { b.p.phone = ph; return b }
func (b *Builder) Email(e Email) *Builder { b.p.email = e; return b }
func (b *Builder) Address(a Address) *Builder { b.p.address = a; return b }
func (b *Builder) Weights(w WeightMap) *Builder { b.p.weights = w; return b }
func (b *Builder) Height(h Height) *Builder { b.p.height = h; return b }
func (b *Builder) Note(n Note) *Builder { b.p.note = n; return b }
func (b *Builder) Exercises(e ExerciseSet) *Builder { b.p.exercises = e; return b }

// Tags replaces the tag set. Duplicates are dropped.
func (b *Builder) Tags(tags ...Tag) *Builder {
	seen := make(map[Tag]bool, len(tags))
	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	b.p.tags = out
	return b
}

// Build returns a new immutable Person.
func (b *Builder) Build() *Person {
	p := b.p
	p.tags = append([]Tag(nil), b.p.tags...)
	if p.exercises.byName == nil {
		p.exercises = NewExerciseSet()
	}
	return &p
}

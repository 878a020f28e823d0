package platform

import (
	"time"

	"github.com/aretw0/fitbook/pkg/core"
	"github.com/aretw0/fitbook/pkg/person"
)

// SampleAddressBook returns a small book used to populate a fresh install.
func SampleAddressBook() (*core.AddressBook, error) {
	day := time.Date(2024, 1, 15, 8, 0, 0, 0, time.Local)

	return core.NewAddressBook(
		person.NewBuilder("Alex Yeoh", "87438807").
			Email("alexyeoh@example.com").
			Address("Blk 30 Geylang Street 29, #06-40").
			Tags("friends").
			Height(175).
			Weights(person.NewWeightMap().Put(day, 72.5).Put(day.AddDate(0, 0, 7), 71.8)).
			Build(),
		person.NewBuilder("Bernice Yu", "99272758").
			Email("berniceyu@example.com").
			Address("Blk 30 Lorong 3 Serangoon Gardens, #07-18").
			Tags("colleagues", "friends").
			Exercises(person.NewExerciseSet().With(person.DefaultExercises(person.GroupLeg)...)).
			Build(),
		person.NewBuilder("Charlotte Oliveiro", "93210283").
			Email("charlotte@example.com").
			Address("Blk 11 Ang Mo Kio Street 74, #11-04").
			Tags("neighbours").
			Note("Recovering from a sprained ankle").
			Build(),
		person.NewBuilder("David Li", "91031282").
			Email("lidavid@example.com").
			Address("Blk 436 Serangoon Gardens Street 26, #16-43").
			Tags("family").
			Height(182).
			Build(),
	)
}

package command

import (
	"fmt"

	"github.com/aretw0/fitbook/pkg/core"
	"github.com/aretw0/fitbook/pkg/person"
)

const (
	EditWord  = "edit"
	EditUsage = EditWord + ": Edits the details of the client identified by the index number used in the displayed client list. " +
		"Existing values will be overwritten by the input values.\n" +
		"Parameters: INDEX (must be a positive integer) [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [t/TAG]...\n" +
		"Example: " + EditWord + " 1 p/91234567 e/johndoe@example.com"

	MessageEditPersonSuccess = "Edited Client: %s"
	MessageNotEdited         = "At least one field to edit must be provided."
)

// EditDescriptor holds the fields to overwrite. Nil fields keep the current
// value. A non-nil empty Tags clears every tag.
type EditDescriptor struct {
	Name    *person.Name
	Phone   *person.Phone
	Email   *person.Email
	Address *person.Address
	Tags    *[]person.Tag
}

// IsAnyFieldEdited reports whether at least one field is set.
func (d EditDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil || d.Address != nil || d.Tags != nil
}

func (d EditDescriptor) apply(p *person.Person) *person.Person {
	b := person.From(p)
	if d.Name != nil {
		b.Name(*d.Name)
	}
	if d.Phone != nil {
		b.Phone(*d.Phone)
	}
	if d.Email != nil {
		b.Email(*d.Email)
	}
	if d.Address != nil {
		b.Address(*d.Address)
	}
	if d.Tags != nil {
		b.Tags(*d.Tags...)
	}
	return b.Build()
}

type EditCommand struct {
	Index      core.Index
	Descriptor EditDescriptor
}

func (c *EditCommand) Execute(m core.Model) (Result, error) {
	target, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	edited := c.Descriptor.apply(target)
	if err := replace(m, target, edited); err != nil {
		return Result{}, err
	}
	return personEdited(EditFields, fmt.Sprintf(MessageEditPersonSuccess, edited.Formatted())), nil
}

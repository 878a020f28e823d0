package parser

import (
	"github.com/aretw0/fitbook/pkg/command"
	"github.com/aretw0/fitbook/pkg/person"
)

// EditCommandParser parses "INDEX [n/] [p/] [e/] [a/] [t/]...". A single
// empty t/ clears all tags.
type EditCommandParser struct{}

func (p *EditCommandParser) Parse(args string) (*command.EditCommand, error) {
	m := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag)

	idx, err := ParseIndex(m.Preamble())
	if err != nil {
		return nil, invalidFormatWrap(command.EditUsage, err)
	}
	if err := m.VerifyNoDuplicatePrefixesFor(PrefixName, PrefixPhone, PrefixEmail, PrefixAddress); err != nil {
		return nil, err
	}

	var d command.EditDescriptor
	if v, ok := m.Value(PrefixName); ok {
		name, err := ParseName(v)
		if err != nil {
			return nil, err
		}
		d.Name = &name
	}
	if v, ok := m.Value(PrefixPhone); ok {
		phone, err := ParsePhone(v)
		if err != nil {
			return nil, err
		}
		d.Phone = &phone
	}
	if v, ok := m.Value(PrefixEmail); ok {
		email, err := ParseEmail(v, true)
		if err != nil {
			return nil, err
		}
		d.Email = &email
	}
	if v, ok := m.Value(PrefixAddress); ok {
		address, err := ParseAddress(v, true)
		if err != nil {
			return nil, err
		}
		d.Address = &address
	}
	tags, err := parseTagsForEdit(m.AllValues(PrefixTag))
	if err != nil {
		return nil, err
	}
	d.Tags = tags

	if !d.IsAnyFieldEdited() {
		return nil, newParseError(command.MessageNotEdited)
	}
	return &command.EditCommand{Index: idx, Descriptor: d}, nil
}

func parseTagsForEdit(values []string) (*[]person.Tag, error) {
	if len(values) == 0 {
		return nil, nil
	}
	if len(values) == 1 && values[0] == "" {
		empty := []person.Tag{}
		return &empty, nil
	}
	tags, err := ParseTags(values)
	if err != nil {
		return nil, err
	}
	return &tags, nil
}

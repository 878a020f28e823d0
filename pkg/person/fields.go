package person

import "regexp"

// Constraint messages shown to the user when a field fails validation.
const (
	NameConstraints    = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
	PhoneConstraints   = "Phone numbers should only contain numbers, and it should be at least 3 digits long"
	AddressConstraints = "Addresses can take any values, and it should not be blank"
	TagConstraints     = "Tags names should be alphanumeric"
	EmailConstraints   = "Emails should be of the format local-part@domain and adhere to the following constraints:\n" +
		"1. The local-part should only contain alphanumeric characters and these special characters, excluding " +
		"the parentheses, (+_.-). The local-part may not start or end with any special characters.\n" +
		"2. This is followed by a '@' and then a domain name. The domain name is made up of domain labels " +
		"separated by periods.\n" +
		"The domain name must:\n" +
		"    - end with a domain label at least 2 characters long\n" +
		"    - have each domain label start and end with alphanumeric characters\n" +
		"    - have each domain label consist of alphanumeric characters, separated only by hyphens, if any."
)

var (
	nameRegex    = regexp.MustCompile(`^[[:alnum:]][[:alnum:] ]*$`)
	phoneRegex   = regexp.MustCompile(`^\d{3,}$`)
	addressRegex = regexp.MustCompile(`^[^\s].*$`)
	tagRegex     = regexp.MustCompile(`^[[:alnum:]]+$`)
	emailRegex   = regexp.MustCompile(
		`^[[:alnum:]]+([+_.-][[:alnum:]]+)*` + // local part
			`@([[:alnum:]]+(-[[:alnum:]]+)*\.)*` + // domain labels
			`([[:alnum:]]+(-[[:alnum:]]+)*){2,}$`) // last label
)

// Name is a client's display name.
type Name string

// IsValidName reports whether s is an acceptable name.
func IsValidName(s string) bool { return nameRegex.MatchString(s) }

func (n Name) String() string { return string(n) }

// Phone is a digits-only phone number.
type Phone string

// IsValidPhone reports whether s is an acceptable phone number.
func IsValidPhone(s string) bool { return phoneRegex.MatchString(s) }

func (p Phone) String() string { return string(p) }

// Email is optional; the empty value means "not provided".
type Email string

// IsValidEmail reports whether s is an acceptable, non-empty email address.
func IsValidEmail(s string) bool { return emailRegex.MatchString(s) }

func (e Email) String() string { return string(e) }

// Address is optional; the empty value means "not provided".
type Address string

// IsValidAddress reports whether s is an acceptable, non-empty address.
func IsValidAddress(s string) bool { return addressRegex.MatchString(s) }

func (a Address) String() string { return string(a) }

// Note is free text attached to a client.
type Note string

func (n Note) String() string { return string(n) }

// Tag labels a client. Tags compare by exact value.
type Tag string

// IsValidTag reports whether s is an acceptable tag name.
func IsValidTag(s string) bool { return tagRegex.MatchString(s) }

func (t Tag) String() string { return "[" + string(t) + "]" }

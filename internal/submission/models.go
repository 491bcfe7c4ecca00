// Package submission owns the three persisted record kinds, their validation
// rules, and the storage contract they are written through. Records are
// immutable after the write: there are no update or delete paths.
package submission

import (
	"fmt"
	"regexp"
	"strings"

	dErrors "buildstone/pkg/domain-errors"
)

// Kind identifies one of the persisted record kinds.
type Kind string

const (
	KindInquiry Kind = "inquiry"
	KindOrder   Kind = "order"
	KindMeeting Kind = "meeting"
)

// Kinds lists every persisted record kind, in the order /api/recent reports them.
var Kinds = []Kind{KindInquiry, KindOrder, KindMeeting}

// collections is the static mapping from record kind to storage collection.
// Explicit rather than derived from type names so a rename can never silently
// change where records land; NewService checks it covers every kind.
var collections = map[Kind]string{
	KindInquiry: "inquiry",
	KindOrder:   "order",
	KindMeeting: "meeting",
}

// CollectionFor resolves the storage collection for a kind.
func CollectionFor(kind Kind) (string, error) {
	c, ok := collections[kind]
	if !ok {
		return "", fmt.Errorf("no collection mapped for kind %q", kind)
	}
	return c, nil
}

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^[\d\s\+\-\(\)]+$`)
)

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return dErrors.Validation(field, "is required")
	}
	return nil
}

func requireEmail(field, value string) error {
	if err := requireText(field, value); err != nil {
		return err
	}
	if !emailPattern.MatchString(strings.TrimSpace(value)) {
		return dErrors.Validation(field, "must be a valid email address")
	}
	return nil
}

func optionalPhone(field, value string) error {
	phone := strings.TrimSpace(value)
	if phone == "" {
		return nil
	}
	if !phonePattern.MatchString(phone) || len(phone) < 7 || len(phone) > 20 {
		return dErrors.Validation(field, "must be a valid phone number")
	}
	return nil
}

// Record is one validatable, persistable submission. Implemented by the three
// concrete kinds in this package.
type Record interface {
	Kind() Kind
	Validate() error
	document() map[string]any
}

// Inquiry is a contact-form submission.
type Inquiry struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Subject       string `json:"subject"`
	Message       string `json:"message"`
	PreferredTime string `json:"preferred_time,omitempty"`
}

func (Inquiry) Kind() Kind { return KindInquiry }

func (i Inquiry) Validate() error {
	if err := requireText("name", i.Name); err != nil {
		return err
	}
	if err := requireEmail("email", i.Email); err != nil {
		return err
	}
	if err := optionalPhone("phone", i.Phone); err != nil {
		return err
	}
	if err := requireText("subject", i.Subject); err != nil {
		return err
	}
	return requireText("message", i.Message)
}

func (i Inquiry) document() map[string]any {
	doc := map[string]any{
		"name":    strings.TrimSpace(i.Name),
		"email":   strings.ToLower(strings.TrimSpace(i.Email)),
		"subject": strings.TrimSpace(i.Subject),
		"message": strings.TrimSpace(i.Message),
	}
	putOptional(doc, "phone", i.Phone)
	putOptional(doc, "preferred_time", i.PreferredTime)
	return doc
}

// Order is a product order placed through the chatbot. ProductType is one of
// marble/granite/construction-service by convention, not enforced as an enum.
type Order struct {
	CustomerName string `json:"customer_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	ProductType  string `json:"product_type"`
	ProductName  string `json:"product_name,omitempty"`
	Quantity     string `json:"quantity,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

func (Order) Kind() Kind { return KindOrder }

func (o Order) Validate() error {
	if err := requireText("customer_name", o.CustomerName); err != nil {
		return err
	}
	if err := requireEmail("email", o.Email); err != nil {
		return err
	}
	if err := optionalPhone("phone", o.Phone); err != nil {
		return err
	}
	return requireText("product_type", o.ProductType)
}

func (o Order) document() map[string]any {
	doc := map[string]any{
		"customer_name": strings.TrimSpace(o.CustomerName),
		"email":         strings.ToLower(strings.TrimSpace(o.Email)),
		"product_type":  strings.TrimSpace(o.ProductType),
	}
	putOptional(doc, "phone", o.Phone)
	putOptional(doc, "product_name", o.ProductName)
	putOptional(doc, "quantity", o.Quantity)
	putOptional(doc, "notes", o.Notes)
	return doc
}

// Meeting is a site-visit or consultation booking.
type Meeting struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Topic    string `json:"topic,omitempty"`
	Location string `json:"location,omitempty"`
}

func (Meeting) Kind() Kind { return KindMeeting }

func (m Meeting) Validate() error {
	if err := requireText("name", m.Name); err != nil {
		return err
	}
	if err := requireEmail("email", m.Email); err != nil {
		return err
	}
	if err := optionalPhone("phone", m.Phone); err != nil {
		return err
	}
	if err := requireText("date", m.Date); err != nil {
		return err
	}
	return requireText("time", m.Time)
}

func (m Meeting) document() map[string]any {
	doc := map[string]any{
		"name":  strings.TrimSpace(m.Name),
		"email": strings.ToLower(strings.TrimSpace(m.Email)),
		"date":  strings.TrimSpace(m.Date),
		"time":  strings.TrimSpace(m.Time),
	}
	putOptional(doc, "phone", m.Phone)
	putOptional(doc, "topic", m.Topic)
	putOptional(doc, "location", m.Location)
	return doc
}

func putOptional(doc map[string]any, key, value string) {
	if v := strings.TrimSpace(value); v != "" {
		doc[key] = v
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MemberDash Contributors

package member

import (
	"encoding/json"
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/samber/oops"
)

// Status is a member's occupation status.
type Status string

// Status values, matching the status_member database enum.
const (
	StatusWorker     Status = "pekerja"
	StatusHomemaker  Status = "ibu rumah tangga"
	StatusPupil      Status = "pelajar"
	StatusStudent    Status = "mahasiswa"
	StatusUnemployed Status = "pengangguran"
)

// Statuses lists every valid Status.
func Statuses() []Status {
	return []Status{StatusWorker, StatusHomemaker, StatusPupil, StatusStudent, StatusUnemployed}
}

// Gender is a member's gender, matching the gender_member database enum.
type Gender string

// Gender values.
const (
	GenderMale   Gender = "laki-laki"
	GenderFemale Gender = "perempuan"
)

// DateLayout is the wire and display format of Date.
const DateLayout = "2006-01-02"

// Date is a calendar date without time of day. The zero Date is unset.
type Date struct {
	time.Time
}

// NewDate returns the date y-m-d at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, oops.Code("MEMBER_INVALID_DATE").With("value", s).Wrap(ErrInvalid)
	}
	return Date{t}, nil
}

// DateOf truncates t to its calendar date in t's location.
func DateOf(t time.Time) Date {
	return NewDate(t.Date())
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// MarshalJSON encodes d as a YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return oops.Code("MEMBER_INVALID_DATE").Wrap(ErrInvalid)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Member is one entry in the registry.
type Member struct {
	ID         int32  `json:"id"`
	NIK        int32  `json:"nik"`
	Name       string `json:"nama"`
	Age        int32  `json:"umur"`
	BirthDate  Date   `json:"tanggal_lahir"`
	BirthPlace string `json:"tempat_lahir"`
	Status     Status `json:"status"`
	Gender     Gender `json:"gender"`
}

var earliestBirthDate = NewDate(1900, time.January, 1)

// Validate checks every client-supplied field. ID is assigned by the store
// and is not checked.
func (m Member) Validate() error {
	err := validation.ValidateStruct(&m,
		validation.Field(&m.NIK, validation.Required, validation.Min(1)),
		validation.Field(&m.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&m.Age, validation.Min(0), validation.Max(150)),
		validation.Field(&m.BirthDate, validation.By(validBirthDate)),
		validation.Field(&m.BirthPlace, validation.Required, validation.Length(1, 100)),
		validation.Field(&m.Status, validation.Required,
			validation.In(StatusWorker, StatusHomemaker, StatusPupil, StatusStudent, StatusUnemployed)),
		validation.Field(&m.Gender, validation.Required, validation.In(GenderMale, GenderFemale)),
	)
	if err != nil {
		return oops.Code("MEMBER_INVALID").With("fields", FieldErrors(err)).Wrap(errors.Join(ErrInvalid, err))
	}
	return nil
}

func validBirthDate(value any) error {
	d, _ := value.(Date)
	switch {
	case d.IsZero():
		return errors.New("cannot be blank")
	case d.Before(earliestBirthDate.Time):
		return errors.New("must be on or after " + earliestBirthDate.String())
	case d.After(time.Now()):
		return errors.New("must not be in the future")
	}
	return nil
}

package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Gender values stored on a record. The numeric codes 0/1 exist only at
// the search-parameter boundary and never reach storage.
const (
	GenderMale   = "Nam"
	GenderFemale = "Nữ"
)

// birthDateRe enforces the DD/MM/YYYY wire format of the original roster.
var birthDateRe = regexp.MustCompile(`^(0[1-9]|[12][0-9]|3[01])/(0[1-9]|1[0-2])/\d{4}$`)

// Student is one roster record. The id is assigned once from the student
// counter and never changes afterwards.
type Student struct {
	ID         int64  `json:"id" db:"id"`
	FullName   string `json:"full_name" db:"full_name"`
	BirthDate  string `json:"birth_date" db:"birth_date"`
	Gender     string `json:"gender" db:"gender"`
	Address    string `json:"address" db:"address"`
	SocialLink string `json:"social_link" db:"social_link"`
}

// StudentRequest carries the mutable fields for create and update.
type StudentRequest struct {
	FullName   string `json:"full_name"`
	BirthDate  string `json:"birth_date"`
	Gender     string `json:"gender"`
	Address    string `json:"address"`
	SocialLink string `json:"social_link,omitempty"`
}

// Normalize trims surrounding whitespace so the required-field rules see
// what will actually be stored.
func (r *StudentRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.BirthDate = strings.TrimSpace(r.BirthDate)
	r.Gender = strings.TrimSpace(r.Gender)
	r.Address = strings.TrimSpace(r.Address)
	r.SocialLink = strings.TrimSpace(r.SocialLink)
}

func (r StudentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName,
			validation.Required.Error("full_name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.BirthDate,
			validation.Required.Error("birth_date is required"),
			validation.Match(birthDateRe).Error("birth_date must be in DD/MM/YYYY format"),
		),
		validation.Field(&r.Gender,
			validation.Required.Error("gender is required"),
			validation.In(GenderMale, GenderFemale).Error("gender must be Nam or Nữ"),
		),
		validation.Field(&r.Address,
			validation.Required.Error("address is required"),
			validation.Length(1, 500),
		),
		validation.Field(&r.SocialLink,
			validation.When(r.SocialLink != "", is.URL.Error("social_link must be a valid URL")),
		),
	)
}

// ToStudent builds the record to persist; the caller supplies the id.
func (r *StudentRequest) ToStudent(id int64) *Student {
	return &Student{
		ID:         id,
		FullName:   r.FullName,
		BirthDate:  r.BirthDate,
		Gender:     r.Gender,
		Address:    r.Address,
		SocialLink: r.SocialLink,
	}
}

// StudentResponse projects exactly the six public fields.
type StudentResponse struct {
	ID         int64  `json:"id"`
	FullName   string `json:"full_name"`
	BirthDate  string `json:"birth_date"`
	Gender     string `json:"gender"`
	Address    string `json:"address"`
	SocialLink string `json:"social_link"`
}

func (s *Student) ToResponse() *StudentResponse {
	return &StudentResponse{
		ID:         s.ID,
		FullName:   s.FullName,
		BirthDate:  s.BirthDate,
		Gender:     s.Gender,
		Address:    s.Address,
		SocialLink: s.SocialLink,
	}
}

// Filter is a normalized, validated search filter. Empty fields mean
// "no condition". Month is zero-padded to two digits when set.
type Filter struct {
	Name    string
	Gender  string
	Address string
	Month   string
}

// IsEmpty reports whether the filter applies no condition at all.
func (f Filter) IsEmpty() bool {
	return f.Name == "" && f.Gender == "" && f.Address == "" && f.Month == ""
}

// SearchQuery carries the raw search parameters exactly as they arrive
// on the query string. Field names follow the original API contract.
type SearchQuery struct {
	HoTen    string // substring match on full_name
	GioiTinh string // gender code: "0" female, "1" male
	DiaChi   string // substring match on address
	Thang    string // month of birth, 1-12
}

// ToFilter validates and normalizes the raw parameters. Invalid gender
// codes and months are rejected here, before any query is built.
func (q SearchQuery) ToFilter() (Filter, error) {
	f := Filter{
		Name:    strings.TrimSpace(q.HoTen),
		Address: strings.TrimSpace(q.DiaChi),
	}

	if raw := strings.TrimSpace(q.GioiTinh); raw != "" {
		switch raw {
		case "0":
			f.Gender = GenderFemale
		case "1":
			f.Gender = GenderMale
		default:
			return Filter{}, NewInvalidGenderCode(raw)
		}
	}

	if raw := strings.TrimSpace(q.Thang); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			return Filter{}, NewInvalidBirthMonth(raw)
		}
		f.Month = fmt.Sprintf("%02d", month)
	}

	return f, nil
}

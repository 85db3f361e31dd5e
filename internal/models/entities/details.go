package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ItemDetails is the per-type attribute bag. One variant exists per ItemType
// so attributes that make no sense for a type (a flight number on a note) are
// unrepresentable. On the wire every variant is a flat key set; empty strings
// are stripped so "" and absent mean the same thing everywhere.
type ItemDetails interface {
	DetailType() ItemType
	// Empty reports whether every attribute, common ones included, is unset.
	Empty() bool
}

// CommonDetails applies to every item type.
type CommonDetails struct {
	ConfirmationNumber string `json:"confirmationNumber,omitempty"`
	Notes              string `json:"notes,omitempty"`
}

func (c CommonDetails) commonEmpty() bool {
	return c.ConfirmationNumber == "" && c.Notes == ""
}

type FlightDetails struct {
	CommonDetails
	Airline          string `json:"airline,omitempty"`
	FlightNumber     string `json:"flightNumber,omitempty"`
	DepartureAirport string `json:"departureAirport,omitempty"`
	ArrivalAirport   string `json:"arrivalAirport,omitempty"`
}

func (d FlightDetails) DetailType() ItemType { return ItemTypeFlight }
func (d FlightDetails) Empty() bool {
	return d.commonEmpty() && d.Airline == "" && d.FlightNumber == "" &&
		d.DepartureAirport == "" && d.ArrivalAirport == ""
}

type AccommodationDetails struct {
	CommonDetails
	Address      string `json:"address,omitempty"`
	CheckInTime  string `json:"checkInTime,omitempty"`
	CheckOutTime string `json:"checkOutTime,omitempty"`
}

func (d AccommodationDetails) DetailType() ItemType { return ItemTypeAccommodation }
func (d AccommodationDetails) Empty() bool {
	return d.commonEmpty() && d.Address == "" && d.CheckInTime == "" && d.CheckOutTime == ""
}

type RentalCarDetails struct {
	CommonDetails
	Company         string `json:"company,omitempty"`
	PickupLocation  string `json:"pickupLocation,omitempty"`
	DropoffLocation string `json:"dropoffLocation,omitempty"`
	PickupTime      string `json:"pickupTime,omitempty"`
	DropoffTime     string `json:"dropoffTime,omitempty"`
}

func (d RentalCarDetails) DetailType() ItemType { return ItemTypeRentalCar }
func (d RentalCarDetails) Empty() bool {
	return d.commonEmpty() && d.Company == "" && d.PickupLocation == "" &&
		d.DropoffLocation == "" && d.PickupTime == "" && d.DropoffTime == ""
}

type ActivityDetails struct {
	CommonDetails
	Provider string `json:"provider,omitempty"`
}

func (d ActivityDetails) DetailType() ItemType { return ItemTypeActivity }
func (d ActivityDetails) Empty() bool          { return d.commonEmpty() && d.Provider == "" }

type NoteDetails struct {
	CommonDetails
}

func (d NoteDetails) DetailType() ItemType { return ItemTypeNote }
func (d NoteDetails) Empty() bool          { return d.commonEmpty() }

// DecodeDetails unmarshals a raw details bag into the variant for t. A missing
// or empty bag decodes to nil, as does a bag whose attributes are all blank.
func DecodeDetails(t ItemType, raw json.RawMessage) (ItemDetails, error) {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil
	}
	var details ItemDetails
	var err error
	switch t {
	case ItemTypeFlight:
		var d FlightDetails
		err = json.Unmarshal(raw, &d)
		details = d
	case ItemTypeAccommodation:
		var d AccommodationDetails
		err = json.Unmarshal(raw, &d)
		details = d
	case ItemTypeRentalCar:
		var d RentalCarDetails
		err = json.Unmarshal(raw, &d)
		details = d
	case ItemTypeActivity:
		var d ActivityDetails
		err = json.Unmarshal(raw, &d)
		details = d
	case ItemTypeNote:
		var d NoteDetails
		err = json.Unmarshal(raw, &d)
		details = d
	default:
		return nil, fmt.Errorf("unknown item type %q", t)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s details: %w", t, err)
	}
	return NormalizeDetails(details), nil
}

// NormalizeDetails trims whitespace from every attribute and collapses a
// fully blank bag to nil.
func NormalizeDetails(d ItemDetails) ItemDetails {
	if d == nil {
		return nil
	}
	switch v := d.(type) {
	case FlightDetails:
		v.CommonDetails = v.CommonDetails.trimmed()
		v.Airline = strings.TrimSpace(v.Airline)
		v.FlightNumber = strings.TrimSpace(v.FlightNumber)
		v.DepartureAirport = strings.TrimSpace(v.DepartureAirport)
		v.ArrivalAirport = strings.TrimSpace(v.ArrivalAirport)
		d = v
	case AccommodationDetails:
		v.CommonDetails = v.CommonDetails.trimmed()
		v.Address = strings.TrimSpace(v.Address)
		v.CheckInTime = strings.TrimSpace(v.CheckInTime)
		v.CheckOutTime = strings.TrimSpace(v.CheckOutTime)
		d = v
	case RentalCarDetails:
		v.CommonDetails = v.CommonDetails.trimmed()
		v.Company = strings.TrimSpace(v.Company)
		v.PickupLocation = strings.TrimSpace(v.PickupLocation)
		v.DropoffLocation = strings.TrimSpace(v.DropoffLocation)
		v.PickupTime = strings.TrimSpace(v.PickupTime)
		v.DropoffTime = strings.TrimSpace(v.DropoffTime)
		d = v
	case ActivityDetails:
		v.CommonDetails = v.CommonDetails.trimmed()
		v.Provider = strings.TrimSpace(v.Provider)
		d = v
	case NoteDetails:
		v.CommonDetails = v.CommonDetails.trimmed()
		d = v
	}
	if d.Empty() {
		return nil
	}
	return d
}

func (c CommonDetails) trimmed() CommonDetails {
	c.ConfirmationNumber = strings.TrimSpace(c.ConfirmationNumber)
	c.Notes = strings.TrimSpace(c.Notes)
	return c
}

// DetailPairs renders the bag as ordered label/value pairs for the summary
// flattening. Order matches the original display: confirmation first, then
// type-specific attributes, item notes last.
func DetailPairs(d ItemDetails) [][2]string {
	if d == nil {
		return nil
	}
	var pairs [][2]string
	add := func(label, value string) {
		if value != "" {
			pairs = append(pairs, [2]string{label, value})
		}
	}
	switch v := d.(type) {
	case FlightDetails:
		add("Conf#", v.ConfirmationNumber)
		add("Airline", v.Airline)
		add("Flight#", v.FlightNumber)
		add("Departure", v.DepartureAirport)
		add("Arrival", v.ArrivalAirport)
		add("Item Notes", v.Notes)
	case AccommodationDetails:
		add("Conf#", v.ConfirmationNumber)
		add("Address", v.Address)
		add("Check-in", v.CheckInTime)
		add("Check-out", v.CheckOutTime)
		add("Item Notes", v.Notes)
	case RentalCarDetails:
		add("Conf#", v.ConfirmationNumber)
		add("Company", v.Company)
		add("Pickup", v.PickupLocation)
		add("Dropoff", v.DropoffLocation)
		add("Pickup Time", v.PickupTime)
		add("Dropoff Time", v.DropoffTime)
		add("Item Notes", v.Notes)
	case ActivityDetails:
		add("Conf#", v.ConfirmationNumber)
		add("Provider", v.Provider)
		add("Item Notes", v.Notes)
	case NoteDetails:
		add("Conf#", v.ConfirmationNumber)
		add("Item Notes", v.Notes)
	}
	return pairs
}

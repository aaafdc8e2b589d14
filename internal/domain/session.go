package domain

import (
	"math"
	"time"
)

// SessionStatus represents the lifecycle state of a parking session.
// A session is created open and transitions to closed exactly once.
type SessionStatus string

const (
	StatusOpen   SessionStatus = "open"
	StatusClosed SessionStatus = "closed"
)

// ParkingSession represents one continuous stay of one vehicle in one
// parking spot. HourlyRate is captured at entry time and never changes
// for the life of the session, so later rate changes cannot alter the
// charge for vehicles already parked.
type ParkingSession struct {
	ID         int64
	VehicleID  int64
	SpotID     int64
	EntryTime  time.Time // UTC
	ExitTime   *time.Time
	HourlyRate float64
	AmountPaid *float64 // Устанавливается ровно один раз, атомарно с ExitTime
	Status     SessionStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpen returns true while the vehicle is still parked.
func (s *ParkingSession) IsOpen() bool {
	return s.Status == StatusOpen
}

// IsClosed returns true once the exit has been registered.
func (s *ParkingSession) IsClosed() bool {
	return s.Status == StatusClosed
}

// DurationHours returns the elapsed stay in hours relative to now for an
// open session, or the final duration for a closed one. Not rounded.
func (s *ParkingSession) DurationHours(now time.Time) float64 {
	end := now
	if s.ExitTime != nil {
		end = *s.ExitTime
	}
	return end.Sub(s.EntryTime).Hours()
}

// BillableHours applies the minimum-billing floor to an elapsed duration.
func BillableHours(elapsedHours float64) float64 {
	return math.Max(MinBillableHours, elapsedHours)
}

// AmountDue computes the unrounded charge for a stay.
func AmountDue(elapsedHours, hourlyRate float64) float64 {
	return BillableHours(elapsedHours) * hourlyRate
}

// RoundCurrency rounds an amount to currency precision. Called at the
// moment of reporting only, never on intermediate values.
func RoundCurrency(amount float64) float64 {
	shift := math.Pow10(CurrencyPrecision)
	return math.Round(amount*shift) / shift
}

// SessionRecord is a session annotated with its vehicle and spot,
// the shape the dashboard and the assistant read.
type SessionRecord struct {
	Session ParkingSession
	Vehicle Vehicle
	Spot    ParkingSpot
}

// PotentialRevenue returns the estimated charge if the vehicle exited
// now. Uses the same minimum-billing floor as the real exit computation.
func (r *SessionRecord) PotentialRevenue(now time.Time) float64 {
	return AmountDue(r.Session.DurationHours(now), r.Session.HourlyRate)
}

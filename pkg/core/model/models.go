package model

import "time"

// Role identifies a restaurant staff role
type Role string

const (
	RoleManager       Role = "manager"
	RoleHeadChef      Role = "head_chef"
	RoleChef          Role = "chef"
	RoleKitchenPorter Role = "kitchen_porter"
	RoleServer        Role = "server"
	RoleHost          Role = "host"
	RoleBartender     Role = "bartender"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleManager, RoleHeadChef, RoleChef, RoleKitchenPorter, RoleServer, RoleHost, RoleBartender:
		return true
	}
	return false
}

// Seniority maps a role to a 1-5 rank used when matching staff against
// template priority. Managers and head chefs sit at the top, kitchen
// porters at the bottom.
func (r Role) Seniority() int {
	switch r {
	case RoleManager, RoleHeadChef:
		return 5
	case RoleChef:
		return 4
	case RoleBartender:
		return 3
	case RoleServer, RoleHost:
		return 2
	case RoleKitchenPorter:
		return 1
	}
	return 1
}

// Staff represents a member of restaurant staff
type Staff struct {
	ID              string
	FirstName       string
	LastName        string
	Role            Role
	HourlyRate      float64
	MaxHoursPerWeek float64
	AvailableDays   []time.Weekday
	IsUnder18       bool
	IsActive        bool
}

// AvailableOn reports whether the staff member works on the given weekday
func (s Staff) AvailableOn(day time.Weekday) bool {
	for _, d := range s.AvailableDays {
		if d == day {
			return true
		}
	}
	return false
}

// RoleRequirement is a headcount demand for a single role within a template
type RoleRequirement struct {
	Role  Role
	Count int
}

// ShiftTemplate is a recurring weekly shift pattern
type ShiftTemplate struct {
	ID               string
	DayOfWeek        time.Weekday
	StartTime        ClockTime
	EndTime          ClockTime
	RoleRequirements []RoleRequirement
	Priority         int // 1-5, 5 = must-fill
	IsActive         bool
}

// TimeOffStatus is the approval state of a time-off request
type TimeOffStatus string

const (
	TimeOffPending  TimeOffStatus = "pending"
	TimeOffApproved TimeOffStatus = "approved"
	TimeOffDenied   TimeOffStatus = "denied"
)

func (s TimeOffStatus) IsValid() bool {
	return s == TimeOffPending || s == TimeOffApproved || s == TimeOffDenied
}

// TimeOffRequest represents a staff time-off request. Only approved
// requests constrain generation and validation.
type TimeOffRequest struct {
	ID        string
	StaffID   string
	StartDate time.Time
	EndDate   time.Time
	Status    TimeOffStatus
}

// Covers reports whether the request's inclusive date range contains the
// given date. Times of day are ignored.
func (t TimeOffRequest) Covers(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(t.StartDate)) && !d.After(DateOnly(t.EndDate))
}

// RoleSlot is the sub-unit of a shift requiring a specific role and headcount
type RoleSlot struct {
	Role             Role
	RequiredCount    int
	AssignedStaffIDs []string
}

// HasStaff reports whether the given staff member is assigned to this slot
func (s RoleSlot) HasStaff(staffID string) bool {
	for _, id := range s.AssignedStaffIDs {
		if id == staffID {
			return true
		}
	}
	return false
}

// IsFull reports whether the slot has reached its required headcount
func (s RoleSlot) IsFull() bool {
	return len(s.AssignedStaffIDs) >= s.RequiredCount
}

// OpenPositions returns the number of unfilled positions in the slot
func (s RoleSlot) OpenPositions() int {
	open := s.RequiredCount - len(s.AssignedStaffIDs)
	if open < 0 {
		return 0
	}
	return open
}

// ShiftInstance is a concrete dated shift within a rota
type ShiftInstance struct {
	ID               string
	Date             time.Time
	StartTime        ClockTime
	EndTime          ClockTime
	RoleSlots        []RoleSlot
	SourceTemplateID string // empty for manually added shifts
}

// DurationMinutes returns the shift length in minutes, treating an end
// time at or before the start as rolling over midnight.
func (s ShiftInstance) DurationMinutes() int {
	return SpanMinutes(s.StartTime, s.EndTime)
}

// HasStaff reports whether the staff member is assigned to any slot of the shift
func (s ShiftInstance) HasStaff(staffID string) bool {
	for _, slot := range s.RoleSlots {
		if slot.HasStaff(staffID) {
			return true
		}
	}
	return false
}

// RotaStatus is the lifecycle state of a rota
type RotaStatus string

const (
	RotaDraft     RotaStatus = "draft"
	RotaPublished RotaStatus = "published"
	RotaArchived  RotaStatus = "archived"
)

func (s RotaStatus) IsValid() bool {
	return s == RotaDraft || s == RotaPublished || s == RotaArchived
}

// Rota is the full weekly schedule artifact
type Rota struct {
	ID            string
	WeekStartDate time.Time // always a Monday
	Status        RotaStatus
	Shifts        []ShiftInstance
	Version       int
}

// IsMutable reports whether assignment mutations are permitted
func (r Rota) IsMutable() bool {
	return r.Status == RotaDraft
}

// FindShift returns a pointer to the shift with the given id, or nil
func (r *Rota) FindShift(shiftID string) *ShiftInstance {
	for i := range r.Shifts {
		if r.Shifts[i].ID == shiftID {
			return &r.Shifts[i]
		}
	}
	return nil
}

// RotaSummary is a lightweight listing record for stored rotas
type RotaSummary struct {
	ID            string
	WeekStartDate time.Time
	Status        RotaStatus
	Version       int
}

// RuleID names a hard-constraint rule
type RuleID string

const (
	RuleTimeOffConflict       RuleID = "TimeOffConflict"
	RuleRoleMismatch          RuleID = "RoleMismatch"
	RuleAvailabilityConflict  RuleID = "AvailabilityConflict"
	RuleMaxHoursExceeded      RuleID = "MaxHoursExceeded"
	RuleLegalHoursExceeded    RuleID = "LegalHoursExceeded"
	RuleDoubleBooking         RuleID = "DoubleBooking"
	RuleDurationOutOfBounds   RuleID = "DurationOutOfBounds"
	RuleUnderageHoursExceeded RuleID = "UnderageHoursExceeded"
	RuleSlotOverCapacity      RuleID = "SlotOverCapacity"
	RuleUnknownStaff          RuleID = "UnknownStaff"
)

// GORM model + DTOs shared by handlers, services and the codec.

package models

import "time"

// Guest is one attendance record. Name is the identifying key (case-insensitive).
// ID and Position only exist for the SQL store; they never leave the API.
type Guest struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	Position int    `gorm:"not null;index" json:"-"` // order inside the collection (0 = first)
	Name     string `gorm:"size:200;not null" json:"name"`
	Day1     string `gorm:"size:200" json:"day1"`
	Day2     string `gorm:"size:200" json:"day2"`
	Attended bool   `gorm:"not null" json:"attended"`
}

// GuestCollection is the single marker row the SQL store writes on every save,
// so a saved empty collection differs from one never stored.
type GuestCollection struct {
	ID      uint `gorm:"primaryKey"`
	Count   int  `gorm:"not null"`
	SavedAt time.Time
}

// DTOs (request/response)

// GuestRequest is the payload for creating or replacing a guest.
// Name is validated again after cleaning ("-" or blanks are rejected by the service).
type GuestRequest struct {
	Name     string `json:"name" binding:"required"`
	Day1     string `json:"day1"`
	Day2     string `json:"day2"`
	Attended bool   `json:"attended"`
}

// AttendanceRequest registers (true) or removes (false) attendance.
// Pointer so that an explicit false passes the required check.
type AttendanceRequest struct {
	Attended *bool `json:"attended" binding:"required"`
}

// GuestList is the response envelope for list/search.
type GuestList struct {
	Items []Guest `json:"items"`
	Total int     `json:"total"` // size of the whole collection, not of Items
	Query string  `json:"query,omitempty"`
}

// CheckInRequest is a single submission sent to the spreadsheet.
// Optional fields default to "" / false.
type CheckInRequest struct {
	Name     string `json:"name"`
	Day1     string `json:"day1"`
	Day2     string `json:"day2"`
	Attended bool   `json:"attended"`
}

// CheckInRow echoes what was appended.
type CheckInRow struct {
	Timestamp string `json:"timestamp"`
	Name      string `json:"name"`
	Day1      string `json:"day1"`
	Day2      string `json:"day2"`
	Attended  bool   `json:"attended"`
}

// CheckInResponse keeps the {ok, row?, error?} envelope of the sync endpoint.
type CheckInResponse struct {
	OK      bool        `json:"ok"`
	Message string      `json:"message,omitempty"`
	Row     *CheckInRow `json:"row,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// LoginRequest is the staff login payload.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// AuthResponse holds the signed staff token.
type AuthResponse struct {
	Token string `json:"token"`
}

// ExportFile is a rendered guest list download.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

package model

import "time"

// VehiclePhoto is one listing photo upload.
type VehiclePhoto struct {
	ID               int64
	VehicleID        int64
	IsHero           bool
	HasLocation      bool
	UploadedByHostID *int64
	CreatedAt        time.Time
}

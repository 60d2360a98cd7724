package services

import (
	"errors"
	"testing"

	"hostel-backend/models"
)

func TestRoomCreate(t *testing.T) {
	db := newTestDB(t)
	rooms := NewRoomService(db)

	room, err := rooms.Create("A-101", "", 2)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if room.Type != "Standard" {
		t.Errorf("type = %q, want default Standard", room.Type)
	}
	if room.Occupied != 0 {
		t.Errorf("occupied = %d, want 0", room.Occupied)
	}

	if _, err := rooms.Create("A-101", "Deluxe", 2); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate number: err = %v, want ErrConflict", err)
	}
	if _, err := rooms.Create("", "Standard", 2); !errors.Is(err, ErrValidation) {
		t.Errorf("empty number: err = %v, want ErrValidation", err)
	}
	if _, err := rooms.Create("A-102", "Standard", 0); !errors.Is(err, ErrValidation) {
		t.Errorf("zero capacity: err = %v, want ErrValidation", err)
	}
}

func TestAllocateIncrementsOccupied(t *testing.T) {
	db := newTestDB(t)
	rooms := NewRoomService(db)

	student := seedStudent(t, db, "Ali")
	room := seedRoom(t, db, "B-201", 2)

	alloc, err := rooms.Allocate(student.ID, room.ID, "2026-08-01")
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	if alloc.Status != models.AllocationActive {
		t.Errorf("status = %q, want active", alloc.Status)
	}
	if alloc.StartDate != "2026-08-01" {
		t.Errorf("start date = %q", alloc.StartDate)
	}
	if got := roomByID(t, db, room.ID).Occupied; got != 1 {
		t.Errorf("occupied = %d, want 1", got)
	}
}

func TestAllocateDefaultsStartDate(t *testing.T) {
	db := newTestDB(t)
	rooms := NewRoomService(db)

	student := seedStudent(t, db, "Bilal")
	room := seedRoom(t, db, "B-202", 1)

	alloc, err := rooms.Allocate(student.ID, room.ID, "  ")
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	if alloc.StartDate != today() {
		t.Errorf("start date = %q, want today", alloc.StartDate)
	}
}

func TestAllocateFullRoom(t *testing.T) {
	db := newTestDB(t)
	rooms := NewRoomService(db)

	first := seedStudent(t, db, "First")
	second := seedStudent(t, db, "Second")
	room := seedRoom(t, db, "C-301", 1)

	if _, err := rooms.Allocate(first.ID, room.ID, ""); err != nil {
		t.Fatalf("first allocate: %v", err)
	}
	if _, err := rooms.Allocate(second.ID, room.ID, ""); !errors.Is(err, ErrRoomFull) {
		t.Fatalf("full room: err = %v, want ErrRoomFull", err)
	}

	// A refused allocation must leave no trace.
	var count int64
	db.Model(&models.Allocation{}).Count(&count)
	if count != 1 {
		t.Errorf("allocations = %d, want 1", count)
	}
	if got := roomByID(t, db, room.ID).Occupied; got != 1 {
		t.Errorf("occupied = %d, want 1", got)
	}
}

func TestAllocateUnknownStudentOrRoom(t *testing.T) {
	db := newTestDB(t)
	rooms := NewRoomService(db)

	student := seedStudent(t, db, "Known")
	room := seedRoom(t, db, "C-302", 1)

	if _, err := rooms.Allocate(student.ID, 9999, ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown room: err = %v, want ErrNotFound", err)
	}
	if _, err := rooms.Allocate(9999, room.ID, ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown student: err = %v, want ErrNotFound", err)
	}
	if got := roomByID(t, db, room.ID).Occupied; got != 0 {
		t.Errorf("occupied = %d, want 0", got)
	}
}

func TestReleaseRoundTrip(t *testing.T) {
	db := newTestDB(t)
	rooms := NewRoomService(db)

	student := seedStudent(t, db, "Danish")
	room := seedRoom(t, db, "D-401", 1)

	alloc, err := rooms.Allocate(student.ID, room.ID, "2026-07-01")
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	if err := rooms.Release(alloc.ID); err != nil {
		t.Fatalf("release: %v", err)
	}

	var got models.Allocation
	if err := db.First(&got, alloc.ID).Error; err != nil {
		t.Fatalf("reload allocation: %v", err)
	}
	if got.Status != models.AllocationReleased {
		t.Errorf("status = %q, want released", got.Status)
	}
	if got.EndDate == nil || *got.EndDate != today() {
		t.Errorf("end date = %v, want today", got.EndDate)
	}
	if occ := roomByID(t, db, room.ID).Occupied; occ != 0 {
		t.Errorf("occupied = %d, want 0 after release", occ)
	}

	// Releasing again must not drive the counter negative.
	if err := rooms.Release(alloc.ID); !errors.Is(err, ErrNotActive) {
		t.Errorf("second release: err = %v, want ErrNotActive", err)
	}
	if occ := roomByID(t, db, room.ID).Occupied; occ != 0 {
		t.Errorf("occupied = %d after double release", occ)
	}
}

func TestReleaseNotFound(t *testing.T) {
	db := newTestDB(t)
	rooms := NewRoomService(db)

	if err := rooms.Release(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRoomDeleteRemovesAllocations(t *testing.T) {
	db := newTestDB(t)
	rooms := NewRoomService(db)

	student := seedStudent(t, db, "Ehsan")
	room := seedRoom(t, db, "E-501", 2)
	if _, err := rooms.Allocate(student.ID, room.ID, ""); err != nil {
		t.Fatalf("allocate: %v", err)
	}

	if err := rooms.Delete(room.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var count int64
	db.Model(&models.Allocation{}).Where("room_id = ?", room.ID).Count(&count)
	if count != 0 {
		t.Errorf("allocations left behind: %d", count)
	}

	if err := rooms.Delete(room.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}
}

func TestListAllocationsJoinsNames(t *testing.T) {
	db := newTestDB(t)
	rooms := NewRoomService(db)

	student := seedStudent(t, db, "Farhan")
	room := seedRoom(t, db, "F-601", 1)
	if _, err := rooms.Allocate(student.ID, room.ID, "2026-06-15"); err != nil {
		t.Fatalf("allocate: %v", err)
	}

	list, err := rooms.ListAllocations()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len = %d, want 1", len(list))
	}
	if list[0].Student != "Farhan" || list[0].Room != "F-601" {
		t.Errorf("row = %+v", list[0])
	}
}

func TestLatestForStudent(t *testing.T) {
	db := newTestDB(t)
	rooms := NewRoomService(db)

	student := seedStudent(t, db, "Ghulam")

	got, err := rooms.LatestForStudent(student.ID)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got != nil {
		t.Fatalf("latest = %+v, want nil before any allocation", got)
	}

	first := seedRoom(t, db, "G-701", 1)
	second := seedRoom(t, db, "G-702", 1)
	alloc, err := rooms.Allocate(student.ID, first.ID, "2026-01-01")
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	if err := rooms.Release(alloc.ID); err != nil {
		t.Fatalf("release: %v", err)
	}
	if _, err := rooms.Allocate(student.ID, second.ID, "2026-02-01"); err != nil {
		t.Fatalf("second allocate: %v", err)
	}

	got, err = rooms.LatestForStudent(student.ID)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got == nil || got.Room != "G-702" || got.Status != models.AllocationActive {
		t.Errorf("latest = %+v, want active G-702", got)
	}
}

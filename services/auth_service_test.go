package services

import (
	"errors"
	"testing"

	"hostel-backend/models"
)

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db)

	if err := auth.CreateUser("admin", "secret123", models.RoleAdmin); err != nil {
		t.Fatalf("create user: %v", err)
	}

	claim, err := auth.Authenticate("admin", "secret123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if claim.Username != "admin" || claim.Role != models.RoleAdmin {
		t.Errorf("claim = %+v, want admin/admin", claim)
	}
	if claim.UserID == 0 {
		t.Error("claim has zero user id")
	}

	if _, err := auth.Authenticate("admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := auth.Authenticate("nobody", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := auth.Authenticate("", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("empty input: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterStudent(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db)

	input := RegisterInput{
		Username:   "rafay",
		Password:   "pass1234",
		Name:       "Rafay Khan",
		Email:      "rafay@example.com",
		Department: "CS",
	}
	if err := auth.RegisterStudent(input); err != nil {
		t.Fatalf("register: %v", err)
	}

	claim, err := auth.Authenticate("rafay", "pass1234")
	if err != nil {
		t.Fatalf("authenticate after register: %v", err)
	}
	if claim.Role != models.RoleStudent {
		t.Errorf("role = %q, want student", claim.Role)
	}

	var student models.Student
	if err := db.Where("user_id = ?", claim.UserID).First(&student).Error; err != nil {
		t.Fatalf("profile not created: %v", err)
	}
	if student.Name != "Rafay Khan" {
		t.Errorf("profile name = %q", student.Name)
	}
	if student.Email == nil || *student.Email != "rafay@example.com" {
		t.Errorf("profile email = %v", student.Email)
	}
}

func TestRegisterStudentDuplicateUsernameIsAtomic(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db)

	input := RegisterInput{Username: "sameer", Password: "pw123456", Name: "Sameer"}
	if err := auth.RegisterStudent(input); err != nil {
		t.Fatalf("first register: %v", err)
	}

	input.Name = "Sameer Two"
	if err := auth.RegisterStudent(input); !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate register: err = %v, want ErrConflict", err)
	}

	var users, students int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Student{}).Count(&students)
	if users != 1 || students != 1 {
		t.Errorf("users = %d, students = %d; duplicate register left partial rows", users, students)
	}
}

func TestRegisterStudentDuplicateEmailLeavesNoOrphanUser(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db)

	first := RegisterInput{Username: "a1", Password: "pw123456", Name: "A", Email: "shared@example.com"}
	if err := auth.RegisterStudent(first); err != nil {
		t.Fatalf("first register: %v", err)
	}

	second := RegisterInput{Username: "a2", Password: "pw123456", Name: "B", Email: "shared@example.com"}
	if err := auth.RegisterStudent(second); !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate email: err = %v, want ErrConflict", err)
	}

	var users int64
	db.Model(&models.User{}).Where("username = ?", "a2").Count(&users)
	if users != 0 {
		t.Error("user row survived a failed registration")
	}
}

func TestCreateUserValidation(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db)

	if err := auth.CreateUser("", "pw", models.RoleAdmin); !errors.Is(err, ErrValidation) {
		t.Errorf("empty username: err = %v, want ErrValidation", err)
	}
	if err := auth.CreateUser("x", "", models.RoleAdmin); !errors.Is(err, ErrValidation) {
		t.Errorf("empty password: err = %v, want ErrValidation", err)
	}
	if err := auth.CreateUser("x", "pw", "superuser"); !errors.Is(err, ErrValidation) {
		t.Errorf("bad role: err = %v, want ErrValidation", err)
	}

	if err := auth.CreateUser("dup", "pw123456", models.RoleAdmin); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := auth.CreateUser("dup", "pw123456", models.RoleAdmin); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate: err = %v, want ErrConflict", err)
	}
}

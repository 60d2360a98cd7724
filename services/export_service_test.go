package services

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
)

func TestStudentsCSV(t *testing.T) {
	db := newTestDB(t)
	students := NewStudentService(db)
	exports := NewExportService(db)

	// A comma and a quote in the name must survive the round trip.
	if _, err := students.Create(StudentInput{Name: `Khan, Asad "AK"`, Department: "CS"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := students.Create(StudentInput{Name: "Plain Name"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	var buf bytes.Buffer
	if err := exports.StudentsCSV(&buf); err != nil {
		t.Fatalf("export: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want header + 2 rows", len(records))
	}
	if records[0][0] != "ID" || records[0][1] != "Name" {
		t.Errorf("header = %v", records[0])
	}
	if records[1][1] != `Khan, Asad "AK"` {
		t.Errorf("name = %q, quoting mangled", records[1][1])
	}
	if records[1][5] != "CS" {
		t.Errorf("department = %q", records[1][5])
	}
}

func TestPaymentsCSV(t *testing.T) {
	db := newTestDB(t)
	payments := NewPaymentService(db, t.TempDir())
	exports := NewExportService(db)
	student := seedStudent(t, db, "Exportee")

	input := PaymentInput{StudentID: student.ID, Amount: 1234.5, Method: "Cash", PaidOn: "2026-03-01", Note: "march, partial"}
	if _, _, err := payments.Record(input, nil, true); err != nil {
		t.Fatalf("record: %v", err)
	}

	var buf bytes.Buffer
	if err := exports.PaymentsCSV(&buf); err != nil {
		t.Fatalf("export: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want header + 1 row", len(records))
	}
	row := records[1]
	if row[1] != "Exportee" || row[2] != "1234.5" || row[4] != "2026-03-01" || row[5] != "march, partial" {
		t.Errorf("row = %v", row)
	}
	if row[6] != "Pending" {
		t.Errorf("status = %q", row[6])
	}
}

func TestExportsEmptyTables(t *testing.T) {
	db := newTestDB(t)
	exports := NewExportService(db)

	var buf bytes.Buffer
	if err := exports.StudentsCSV(&buf); err != nil {
		t.Fatalf("students export: %v", err)
	}
	if got := strings.Count(buf.String(), "\n"); got != 1 {
		t.Errorf("students export has %d lines, want header only", got)
	}

	buf.Reset()
	if err := exports.PaymentsCSV(&buf); err != nil {
		t.Fatalf("payments export: %v", err)
	}
	if got := strings.Count(buf.String(), "\n"); got != 1 {
		t.Errorf("payments export has %d lines, want header only", got)
	}
}

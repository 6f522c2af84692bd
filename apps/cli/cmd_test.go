package main

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/syedfiras/student-attendance-app/core"
	"github.com/syedfiras/student-attendance-app/core/attendance"
	exportsvc "github.com/syedfiras/student-attendance-app/services/export"
	"github.com/syedfiras/student-attendance-app/storage/document/inmemdb"
)

func setup(t *testing.T) (*commandLine, string) {
	store, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open() failed: %v", err)
	}
	exportDir := t.TempDir()
	cli := &commandLine{
		svc:      attendance.NewService(store, core.NewStdLogger(log.New(io.Discard, "", 0))),
		exporter: exportsvc.NewFileExporter(exportDir),
	}
	confirmFunc = func(prompt string) bool { return true }
	return cli, exportDir
}

type cliTest struct {
	name    string
	args    []string // without program name
	wantErr error
}

func Test_commandLine_help(t *testing.T) {
	cli, _ := setup(t)

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "editclass: no id", args: []string{"editclass", "-name", "10-A"}, wantErr: errHelp},
		{name: "rmclass: no id", args: []string{"rmclass"}, wantErr: errHelp},
		{name: "students: no class", args: []string{"students"}, wantErr: errHelp},
		{name: "editstudent: no id", args: []string{"editstudent", "-name", "A"}, wantErr: errHelp},
		{name: "rmstudent: no id", args: []string{"rmstudent"}, wantErr: errHelp},
		{name: "show: no class", args: []string{"show"}, wantErr: errHelp},
		{name: "mark: no class", args: []string{"mark"}, wantErr: errHelp},
		{name: "report: no class", args: []string{"report"}, wantErr: errHelp},
		{name: "export: no class", args: []string{"export"}, wantErr: errHelp},
	}
	for _, tt := range tests {
		args := append([]string{"attendance"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			if err := cli.run(args); err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_commandLine_classFlow(t *testing.T) {
	cli, _ := setup(t)
	ctx := context.Background()

	if err := cli.run([]string{"attendance", "addclass", "-name", "10-A", "-section", "A"}); err != nil {
		t.Fatalf("addclass failed: %v", err)
	}
	// blank names are rejected and leave the list unchanged
	if err := cli.run([]string{"attendance", "addclass", "-name", "   "}); err == nil {
		t.Error("addclass with blank name expected error, got nil")
	}

	classes, _ := cli.svc.Classes(ctx)
	if len(classes) != 1 || classes[0].Name != "10-A" {
		t.Fatalf("Classes() = %+v, want one 10-A", classes)
	}
	cls := classes[0]

	if err := cli.run([]string{"attendance", "editclass", "-id", cls.ID, "-name", "10-B"}); err != nil {
		t.Fatalf("editclass failed: %v", err)
	}
	if err := cli.run([]string{"attendance", "editclass", "-id", "nope", "-name", "X"}); err != attendance.ErrClassNotFound {
		t.Errorf("editclass(unknown) error = %v, want %v", err, attendance.ErrClassNotFound)
	}

	// declined confirmation leaves the class alone
	confirmFunc = func(prompt string) bool { return false }
	if err := cli.run([]string{"attendance", "rmclass", "-id", cls.ID}); err != nil {
		t.Fatalf("rmclass (declined) failed: %v", err)
	}
	if classes, _ = cli.svc.Classes(ctx); len(classes) != 1 {
		t.Fatalf("Classes() after declined delete = %+v, want 1", classes)
	}

	confirmFunc = func(prompt string) bool { return true }
	if err := cli.run([]string{"attendance", "rmclass", "-id", cls.ID}); err != nil {
		t.Fatalf("rmclass failed: %v", err)
	}
	if classes, _ = cli.svc.Classes(ctx); len(classes) != 0 {
		t.Errorf("Classes() after delete = %+v, want none", classes)
	}
}

func Test_commandLine_attendanceFlow(t *testing.T) {
	cli, exportDir := setup(t)
	ctx := context.Background()

	cls, err := cli.svc.CreateClass(ctx, attendance.NewClass{Name: "10-A"})
	if err != nil {
		t.Fatalf("CreateClass() failed: %v", err)
	}
	alice, _ := cli.svc.CreateStudent(ctx, attendance.NewStudent{ClassID: cls.ID, Name: "Alice"})
	bob, _ := cli.svc.CreateStudent(ctx, attendance.NewStudent{ClassID: cls.ID, Name: "Bob"})

	tests := []cliTest{
		{name: "mark: bad date", args: []string{"mark", "-class", cls.ID, "-date", "03/01/2024"}, wantErr: nil},
		{name: "mark day one", args: []string{"mark", "-class", cls.ID, "-date", "2024-03-01", "-absent", bob.ID}},
		{name: "mark day two", args: []string{"mark", "-class", cls.ID, "-date", "2024-03-02"}},
		{name: "show", args: []string{"show", "-class", cls.ID, "-date", "2024-03-01"}},
		{name: "report", args: []string{"report", "-class", cls.ID, "-year", "2024", "-month", "3"}},
		{name: "export", args: []string{"export", "-class", cls.ID, "-year", "2024", "-month", "3"}},
	}
	for _, tt := range tests {
		args := append([]string{"attendance"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			if tt.name == "mark: bad date" {
				if err == nil {
					t.Error("cli.run() expected bad-date error, got nil")
				}
				return
			}
			if err != nil {
				t.Errorf("cli.run() unexpected error = %v", err)
			}
		})
	}

	rows, _ := cli.svc.MonthlyReport(ctx, cls.ID, 2024, 3)
	if len(rows) != 2 {
		t.Fatalf("MonthlyReport() rows = %d, want 2", len(rows))
	}
	if rows[0].StudentID != alice.ID || rows[0].Percent != 100 {
		t.Errorf("rows[0] = %+v, want Alice 100%%", rows[0])
	}
	if rows[1].StudentID != bob.ID || rows[1].Present != 1 || rows[1].Percent != 50 {
		t.Errorf("rows[1] = %+v, want Bob 1/2 50%%", rows[1])
	}

	if _, err := os.Stat(filepath.Join(exportDir, "attendance_3_2024.csv")); err != nil {
		t.Errorf("export file missing: %v", err)
	}

	// marking an id outside the roster is rejected
	if err := cli.run([]string{"attendance", "mark", "-class", cls.ID, "-date", "2024-03-03", "-absent", "nope"}); err == nil {
		t.Error("mark with unknown absentee expected error, got nil")
	}
}

func Test_commandLine_markDefaultsToToday(t *testing.T) {
	cli, _ := setup(t)
	ctx := context.Background()

	cls, _ := cli.svc.CreateClass(ctx, attendance.NewClass{Name: "10-A"})
	stu, _ := cli.svc.CreateStudent(ctx, attendance.NewStudent{ClassID: cls.ID, Name: "Alice"})

	nowFunc = func() time.Time { return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC) }
	defer func() { nowFunc = time.Now }()

	if err := cli.run([]string{"attendance", "mark", "-class", cls.ID}); err != nil {
		t.Fatalf("mark failed: %v", err)
	}
	records, _ := cli.svc.RecordsForDate(ctx, cls.ID, "2024-03-15")
	if !records[stu.ID] {
		t.Errorf("records = %+v, want %s present on 2024-03-15", records, stu.ID)
	}
	rows, _ := cli.svc.MonthlyReport(ctx, cls.ID, 2024, 3)
	if rows[0].Total != 1 {
		t.Errorf("total = %d, want 1 (entry recorded under today)", rows[0].Total)
	}
}

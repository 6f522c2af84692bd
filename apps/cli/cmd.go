package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/syedfiras/student-attendance-app/core"
	"github.com/syedfiras/student-attendance-app/core/attendance"
	exportsvc "github.com/syedfiras/student-attendance-app/services/export"
)

var (
	// mockable
	nowFunc     = time.Now
	confirmFunc = askConfirm

	errHelp = errors.New("help provided")
)

type commandLine struct {
	svc      *attendance.Service
	exporter *exportsvc.FileExporter
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  classes - list classes")
	fmt.Println("  addclass -name NAME [-section SECTION] - create a class")
	fmt.Println("  editclass -id ID -name NAME [-section SECTION] - edit a class")
	fmt.Println("  rmclass -id ID - delete a class, its students and its attendance")
	fmt.Println("  students -class CLASSID - list a class' students")
	fmt.Println("  addstudent -class CLASSID -name NAME [-roll ROLL] [-usn USN] - enroll a student")
	fmt.Println("  editstudent -id ID -name NAME [-roll ROLL] [-usn USN] - edit a student")
	fmt.Println("  rmstudent -id ID - delete a student and their marks")
	fmt.Println("  show -class CLASSID [-date YYYY-MM-DD] - show a date's marks")
	fmt.Println("  mark -class CLASSID [-date YYYY-MM-DD] [-absent ID,ID] - record a date's marks")
	fmt.Println("  report -class CLASSID [-year YYYY] [-month 1-12] - monthly report")
	fmt.Println("  export -class CLASSID [-year YYYY] [-month 1-12] - export monthly report as CSV")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "classes":
		return cli.listClasses()
	case "addclass":
		return cli.addClass(args[2:])
	case "editclass":
		return cli.editClass(args[2:])
	case "rmclass":
		return cli.removeClass(args[2:])
	case "students":
		return cli.listStudents(args[2:])
	case "addstudent":
		return cli.addStudent(args[2:])
	case "editstudent":
		return cli.editStudent(args[2:])
	case "rmstudent":
		return cli.removeStudent(args[2:])
	case "show":
		return cli.showRecords(args[2:])
	case "mark":
		return cli.markAttendance(args[2:])
	case "report":
		return cli.report(args[2:])
	case "export":
		return cli.exportReport(args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

// parseDate checks the YYYY-MM-DD format at the boundary; the core
// treats dates as opaque strings.
func parseDate(date string) (string, error) {
	if date == "" {
		return core.FormatDate(nowFunc()), nil
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
	}
	return date, nil
}

func defaultYearMonth(year, month int) (int, int, error) {
	now := nowFunc()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid month %d, want 1-12", month)
	}
	return year, month, nil
}

func askConfirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(scanner.Text()), "y")
}

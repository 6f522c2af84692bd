package main

import (
	"context"
	"flag"
	"fmt"
	"strings"
)

func (cli *commandLine) showRecords(args []string) error {
	cmd := flag.NewFlagSet("show", flag.ExitOnError)
	classID := cmd.String("class", "", "The class id.")
	date := cmd.String("date", "", "The date (YYYY-MM-DD); defaults to today.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *classID == "" {
		cmd.Usage()
		return errHelp
	}
	day, err := parseDate(*date)
	if err != nil {
		return err
	}

	ctx := context.Background()
	students, err := cli.svc.StudentsByClass(ctx, *classID)
	if err != nil {
		return err
	}
	records, err := cli.svc.RecordsForDate(ctx, *classID, day)
	if err != nil {
		return err
	}

	fmt.Printf("Attendance for %s:\n", day)
	for _, stu := range students {
		status := "ABSENT"
		if records[stu.ID] {
			status = "PRESENT"
		}
		fmt.Printf("%s\t%s\t%s\n", stu.ID, stu.Name, status)
	}
	return nil
}

// markAttendance starts from the date's current marks (every enrolled
// student present on a fresh date), flips the -absent ids to false and
// saves the result.
func (cli *commandLine) markAttendance(args []string) error {
	cmd := flag.NewFlagSet("mark", flag.ExitOnError)
	classID := cmd.String("class", "", "The class id.")
	date := cmd.String("date", "", "The date (YYYY-MM-DD); defaults to today.")
	absent := cmd.String("absent", "", "Comma-separated ids of absent students.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *classID == "" {
		cmd.Usage()
		return errHelp
	}
	day, err := parseDate(*date)
	if err != nil {
		return err
	}

	ctx := context.Background()
	records, err := cli.svc.RecordsForDate(ctx, *classID, day)
	if err != nil {
		return err
	}
	for _, id := range strings.Split(*absent, ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := records[id]; !ok {
			return fmt.Errorf("student %q is not enrolled in class %q", id, *classID)
		}
		records[id] = false
	}

	if err := cli.svc.SaveRecords(ctx, *classID, day, records); err != nil {
		return err
	}
	fmt.Printf("Saved attendance for %s\n", day)
	return nil
}

package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/syedfiras/student-attendance-app/core/attendance"
)

func (cli *commandLine) report(args []string) error {
	cmd := flag.NewFlagSet("report", flag.ExitOnError)
	classID := cmd.String("class", "", "The class id.")
	year := cmd.Int("year", 0, "The report year; defaults to the current year.")
	month := cmd.Int("month", 0, "The report month (1-12); defaults to the current month.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *classID == "" {
		cmd.Usage()
		return errHelp
	}
	y, m, err := defaultYearMonth(*year, *month)
	if err != nil {
		return err
	}

	rows, err := cli.svc.MonthlyReport(context.Background(), *classID, y, m)
	if err != nil {
		return err
	}

	fmt.Printf("%s %d\n", attendance.MonthNames[m], y)
	for _, row := range rows {
		fmt.Printf("%s\t%d/%d classes\t%d%%\n", row.Name, row.Present, row.Total, row.Percent)
	}
	return nil
}

func (cli *commandLine) exportReport(args []string) error {
	cmd := flag.NewFlagSet("export", flag.ExitOnError)
	classID := cmd.String("class", "", "The class id.")
	year := cmd.Int("year", 0, "The report year; defaults to the current year.")
	month := cmd.Int("month", 0, "The report month (1-12); defaults to the current month.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *classID == "" {
		cmd.Usage()
		return errHelp
	}
	y, m, err := defaultYearMonth(*year, *month)
	if err != nil {
		return err
	}

	rows, err := cli.svc.MonthlyReport(context.Background(), *classID, y, m)
	if err != nil {
		return err
	}
	path, err := cli.exporter.Export(rows, y, m)
	if err != nil {
		return err
	}
	fmt.Printf("Exported %s\n", path)
	return nil
}

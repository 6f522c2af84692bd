package main

import (
	"fmt"
	"log"
	"os"

	"github.com/syedfiras/student-attendance-app/core"
	"github.com/syedfiras/student-attendance-app/core/attendance"
	exportsvc "github.com/syedfiras/student-attendance-app/services/export"
	logsvc "github.com/syedfiras/student-attendance-app/services/logger"
	"github.com/syedfiras/student-attendance-app/storage/document/badgerdb"
)

var logger core.Logger

func main() {
	defer os.Exit(0)

	std := log.New(os.Stdout, "ATTENDANCE : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	if core.Conf.GetString("rollbarToken") != "" {
		logger = logsvc.NewRollbarLogger(std)
	} else {
		logger = core.NewStdLogger(std)
	}

	// set up the document store
	store, err := badgerdb.Open(core.Conf.GetString("dataDir"))
	errAndDie(err)
	defer func() { _ = store.Close() }()

	// start CLI
	cli := commandLine{
		svc:      attendance.NewService(store, logger),
		exporter: exportsvc.NewFileExporter(core.Conf.GetString("exportDir")),
	}
	if err := cli.run(os.Args); err != nil {
		switch vErr := err.(type) {
		case *core.ValidationError:
			for _, fld := range vErr.Fields {
				fmt.Printf("%s: %s\n", fld.Field, fld.Error)
			}
		default:
			if err != errHelp {
				logger.Error(err.Error())
			}
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err.Error())
	}
}

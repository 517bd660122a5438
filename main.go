package main

import (
	"flag"
	"log"

	"github.com/heatsight/heatsight-backend/cmd"
)

func main() {
	shouldRunMigrations := flag.Bool("migrations", false, "Run migrations")
	shouldRunWatcher := flag.Bool("ingestion", false, "Run the ingestion watcher service")
	shouldRunBatch := flag.Bool("batch-ingestion", false, "Sweep the incoming directory once and exit")
	flag.Parse()

	if *shouldRunMigrations {
		if err := cmd.RunMigrations(); err != nil {
			log.Fatal(err)
		}
	}
	if *shouldRunWatcher {
		if err := cmd.RunIngestionWatcher(); err != nil {
			log.Fatal(err)
		}
	}
	if *shouldRunBatch {
		if err := cmd.RunBatchIngestion(); err != nil {
			log.Fatal(err)
		}
	}
}

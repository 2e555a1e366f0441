package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/catalog"
	"github.com/fwojciec/catalog/crawl"
	"github.com/fwojciec/catalog/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	DB        *sqlite.DB
	Courses   catalog.CourseService
	Extractor catalog.Extractor
	Syncer    *crawl.Syncer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log every fetch, extraction and save"`

	Sync    SyncCmd    `cmd:"" help:"Crawl the catalog and store every course"`
	List    ListCmd    `cmd:"" help:"List stored courses"`
	Show    ShowCmd    `cmd:"" help:"Show one stored course"`
	Extract ExtractCmd `cmd:"" help:"Run an extractor on a local file and print JSON"`
	Export  ExportCmd  `cmd:"" help:"Export stored courses as markdown files"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored course"`
}

// SyncCmd is the "sync" subcommand.
type SyncCmd struct {
	BaseURL     string        `name:"base-url" default:"https://www.mcgill.ca" help:"Catalog site root"`
	Edition     string        `default:"2022-2023" help:"Catalog edition"`
	ScheduleURL string        `name:"schedule-url" default:"https://vsb.mcgill.ca/vsb/getclassdata.jsp" help:"Schedule feed endpoint"`
	Concurrency int           `short:"c" default:"10" help:"Concurrent course limit"`
	RPS         float64       `name:"rps" default:"2" help:"Requests per second per host (0 disables limiting)"`
	MaxPages    int           `name:"max-pages" help:"Stop after this many search pages (0 reads all)"`
	Browser     bool          `help:"Render pages with a headless browser"`
	Timeout     time.Duration `default:"10s" help:"Per-request timeout"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Subject string `short:"s" help:"Only courses of this subject code"`
	Term    string `short:"t" help:"Only courses offered in this term, e.g. \"Fall 2022\""`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Subject string `arg:"" help:"Subject code, e.g. MATH"`
	Code    string `arg:"" help:"Course code, e.g. 240"`
	JSON    bool   `name:"json" help:"Print the stored record as JSON"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Kind string `arg:"" enum:"listings,page,schedules" help:"Document kind: listings, page or schedules"`
	File string `arg:"" type:"existingfile" help:"Path to the saved document"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir     string `arg:"" help:"Output directory (replaced on success when empty or a previous export)"`
	Subject string `short:"s" help:"Only courses of this subject code"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Subject string `arg:"" help:"Subject code"`
	Code    string `arg:"" help:"Course code"`
	Force   bool   `help:"Confirm deletion"`
}

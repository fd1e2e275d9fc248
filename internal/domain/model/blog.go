package model

import "time"

// BlogPost is an article ingested from the external blog. Title is unique.
type BlogPost struct {
	ID         int64
	Title      string
	Annotation string
	Content    string
	Image      string
	Date       time.Time
	Author     string
}

// IngestReport summarizes a single ingestion run.
type IngestReport struct {
	Links    int
	Created  int
	Existing int
	Skipped  int
	Failed   int
}

// IngestOptions controls a single ingestion run.
type IngestOptions struct {
	// FullRefresh wipes stored posts before fetching. The wipe is not
	// undone if the run fails afterwards.
	FullRefresh bool
}

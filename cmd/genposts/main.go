// Command genposts generates a sample posts workbook shaped like a real
// Twitter export: metadata rows above the header, then text/location/date
// columns. Useful for trying slfmapper without access to a harvest export.
//
// Usage:
//
//	go run ./cmd/genposts -out data/sample_posts.xlsx
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/xuri/excelize/v2"
)

const sheet = "Sheet0"

// samplePosts covers the interesting cases: positive sightings, an
// administrative mention, a duplicate, a foreign location, and a missing one.
var samplePosts = [][]string{
	{"Spotted Lanternfly spotted in my yard today! #SLF", "USA.NJ.Trenton", "2019-05-01 10:32:00.0"},
	{"Call this number to report a sighting", "USA.NJ.Trenton", "2019-05-02 08:00:00.0"},
	{"Spotted Lanternfly spotted in my yard today! #SLF", "USA.NJ.Trenton", "2019-05-03 17:40:00.0"},
	{"killed a lanternfly on the deck this morning", "USA.PA.Philadelphia", "2018-09-12 09:15:00.0"},
	{"lantern flies everywhere on the maple trees", "USA.PA.Reading", "2018-10-01 14:00:00.0"},
	{"saw a spotted lantern fly near the harbour", "Canada.ON.Toronto", "2019-07-04 11:00:00.0"},
	{"found lanternflies on my porch, ugh", "nan", "2020-08-20 19:30:00.0"},
	{"More information about SLF on our website http://agriculture.example.gov/slf", "USA.PA.Harrisburg", "2020-03-15 12:00:00.0"},
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output path for the sample workbook")
	headerRow := flag.Int("header-row", 5, "0-based offset of the header row")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	// Metadata filler above the header, as in real exports.
	for i := range *headerRow {
		if err := setRow(f, i+1, []string{fmt.Sprintf("export metadata %d", i+1)}); err != nil {
			return err
		}
	}
	if err := setRow(f, *headerRow+1, []string{"Full Text", "City Code", "Date"}); err != nil {
		return err
	}
	for i, post := range samplePosts {
		if err := setRow(f, *headerRow+2+i, post); err != nil {
			return err
		}
	}

	if err := f.SaveAs(*out); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	fmt.Fprintf(os.Stdout, "sample workbook written to %s (%d posts)\n", *out, len(samplePosts))
	return nil
}

func setRow(f *excelize.File, row int, values []string) error {
	for col, v := range values {
		cellName, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cellName, v); err != nil {
			return err
		}
	}
	return nil
}

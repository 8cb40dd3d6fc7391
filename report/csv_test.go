package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/betterleaks/rgrep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFindings = []rgrep.Finding{
	{
		Source:      rgrep.SourceFile,
		Path:        "notes.txt",
		LineNumber:  3,
		Column:      7,
		Before:      "Hello ",
		Matched:     "World",
		After:       ", again",
		Fingerprint: "file!path=notes.txt!0badc0de#L3#C7-11",
	},
	{
		Source:      rgrep.SourceFile,
		Path:        "notes.txt",
		LineNumber:  9,
		Column:      1,
		Matched:     "World",
		After:       ` "quoted"`,
		Fingerprint: "file!path=notes.txt!0badc0de#L9#C1-5",
	},
}

func TestWriteCSV(t *testing.T) {
	tests := []struct {
		findings       []rgrep.Finding
		testReportName string
		expected       string
		wantEmpty      bool
	}{
		{
			testReportName: "simple",
			findings:       testFindings,
			expected: "Source,Path,Line,StartColumn,EndColumn,Match,Text,Fingerprint\n" +
				"file,notes.txt,3,7,11,World,\"Hello World, again\",file!path=notes.txt!0badc0de#L3#C7-11\n" +
				"file,notes.txt,9,1,5,World,\"World \"\"quoted\"\"\",file!path=notes.txt!0badc0de#L9#C1-5\n",
		},
		{
			wantEmpty:      true,
			testReportName: "empty",
			findings:       []rgrep.Finding{},
		},
	}

	reporter := CsvReporter{}
	for _, test := range tests {
		t.Run(test.testReportName, func(t *testing.T) {
			tmpfile, err := os.Create(filepath.Join(t.TempDir(), test.testReportName+".csv"))
			require.NoError(t, err)
			defer tmpfile.Close()

			err = reporter.Write(tmpfile, test.findings)
			require.NoError(t, err)
			assert.FileExists(t, tmpfile.Name())

			got, err := os.ReadFile(tmpfile.Name())
			require.NoError(t, err)
			if test.wantEmpty {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, test.expected, string(got))
		})
	}
}

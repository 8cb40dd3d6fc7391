package rgrep

import (
	"fmt"

	"github.com/zeebo/xxh3"
)

// AddFingerprintToFinding computes and sets the fingerprint on a finding.
//
// A fingerprint is a deterministic identifier for a finding. It encodes where
// the match was found and a hash of the matched text, so two scans of the same
// input with the same pattern produce the same fingerprints.
//
// # Format
//
//	{source}!path={path}!{match_hash}#L{line}#C{startCol}-{endCol}
//
// For example, "error" found on the third line of a log file:
//
//	file!path=app.log!1d4e0f6a#L3#C12-16
func AddFingerprintToFinding(finding *Finding) {
	finding.Fingerprint = fmt.Sprintf("%s!path=%s!%s#L%d#C%d-%d",
		finding.Source,
		finding.Path,
		matchHash(finding.Matched),
		finding.LineNumber,
		finding.Column, finding.EndColumn(),
	)
}

// matchHash returns the first 8 hex characters of the XXH3-64 hash of s.
func matchHash(s string) string {
	h := xxh3.HashString(s)
	return fmt.Sprintf("%016x", h)[:8]
}

package config

// DefaultConfigTOML is the commented configuration template written by
// `groupmix init`.
const DefaultConfigTOML = `# groupmix configuration
# Generated by: groupmix init

[grouping]
# Target number of people per group. Group sizes differ by at most one;
# when the roster does not divide evenly the leading groups take the
# extra member.
group_size = 4

# How many randomized greedy passes to run. The lowest-overlap grouping
# found wins; the search stops early when a grouping repeats no past
# pair.
attempts = 100

# Warn when a generated group shares more than this many members with
# any single past group.
max_repeat = 2

# Random seed. 0 means derive from the current time (a different
# grouping each run); any other value makes runs reproducible.
seed = 0

[roster]
# Participant roster: one "email,name" pair per line. Blank lines and
# lines starting with '#' are ignored.
path = "names.txt"

[history]
# Directory of past groupings. Each file lists one group per line as
# space-separated emails. Newly generated groupings are written here too.
directory = "past-groups"

# Which files in the directory count as history (glob patterns against
# the file name). Hidden files are always skipped.
include_patterns = ["*"]
exclude_patterns = ["*.md"]

[output]
# Output format: text, json, yaml, csv
format = "text"

# Include an email-greeting line per group in text output
# ("Hi Alice, Bob, and Carol,").
greeting = true

# Sort order for 'groupmix pairs' reports: count, name
sort_by = "count"
`

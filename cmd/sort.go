package cmd

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/profile"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/verbound/vercmp/internal"
	"github.com/verbound/vercmp/internal/log"
	"github.com/verbound/vercmp/vercmp/version"
)

var sortReverse bool
var sortFlagNames []string

var sortCmd = &cobra.Command{
	Use:   "sort [FILE]",
	Short: "Sort a list of version strings",
	Long: `Sort version strings (one per line) from a file or piped stdin, e.g.:

    vercmp sort versions.txt
    git tag | vercmp sort
`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runSortCmd(cmd, args))
	},
}

func init() {
	sortCmd.Flags().BoolVarP(&sortReverse, "reverse", "r", false, "sort from highest to lowest")
	sortCmd.Flags().StringArrayVar(&sortFlagNames, "flag", nil, "interpretation flag applied to every entry (repeatable)")

	rootCmd.AddCommand(sortCmd)
}

func runSortCmd(_ *cobra.Command, args []string) int {
	if appConfig.Dev.ProfileCPU {
		defer profile.Start(profile.CPUProfile).Stop()
	} else if appConfig.Dev.ProfileMem {
		defer profile.Start(profile.MemProfile).Stop()
	}

	versions, err := readVersionList(afero.NewOsFs(), args)
	if err != nil {
		log.Errorf("could not read versions: %+v", err)
		return 1
	}

	sorted, err := sortVersions(versions)
	if err != nil {
		log.Errorf("could not sort versions: %+v", err)
		return 1
	}

	if sortReverse {
		for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
			sorted[i], sorted[j] = sorted[j], sorted[i]
		}
	}

	for _, v := range sorted {
		fmt.Println(v)
	}

	return 0
}

func sortVersions(versions []string) ([]string, error) {
	if appConfig.FormatOpt == version.GenericFormat {
		flags, err := version.ParseFlags(sortFlagNames)
		if err != nil {
			return nil, err
		}
		version.SortWithFlags(versions, flags)
		return versions, nil
	}

	if len(sortFlagNames) > 0 {
		return nil, fmt.Errorf("interpretation flags are only supported for the %s format", version.GenericFormat)
	}

	// strict formats can reject entries; surface all failures at once
	var errs error
	parsed := make([]*version.Version, 0, len(versions))
	for _, raw := range versions {
		ver, err := version.NewVersion(raw, appConfig.FormatOpt)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		parsed = append(parsed, ver)
	}
	if errs != nil {
		return nil, errs
	}

	sort.SliceStable(parsed, func(i, j int) bool {
		result, err := parsed[i].Compare(parsed[j])
		if err != nil {
			// same-format comparisons cannot fail after successful parsing
			log.Warnf("unable to compare %s with %s: %+v", parsed[i], parsed[j], err)
			return false
		}
		return result < 0
	})

	sorted := make([]string, len(parsed))
	for i, ver := range parsed {
		sorted[i] = ver.Raw
	}
	return sorted, nil
}

func readVersionList(fs afero.Fs, args []string) ([]string, error) {
	if len(args) > 0 {
		content, err := afero.ReadFile(fs, args[0])
		if err != nil {
			return nil, fmt.Errorf("unable to read version list from %s: %w", args[0], err)
		}
		return splitVersionLines(string(content)), nil
	}

	isPiped, err := internal.IsPipedInput()
	if err != nil {
		return nil, err
	}
	if !isPiped {
		return nil, fmt.Errorf("no version list given (provide a file argument or pipe versions to stdin)")
	}

	var lines []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read version list from stdin: %w", err)
	}
	return trimVersionLines(lines), nil
}

func splitVersionLines(content string) []string {
	return trimVersionLines(strings.Split(content, "\n"))
}

func trimVersionLines(lines []string) []string {
	var versions []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		versions = append(versions, line)
	}
	return versions
}

// Package cli renders analysis reports for the command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/HananMiftah/TweetClassifier/internal/cluster"
	"github.com/HananMiftah/TweetClassifier/internal/evaluate"
	"github.com/HananMiftah/TweetClassifier/internal/models"
)

// OutputFormat is the format for report output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// WriteClassifyReport writes a classification or lexicon report to w
// in the given format. Use OutputJSON for parseable output consumable
// by other apps.
func WriteClassifyReport(w io.Writer, report *models.ClassifyReport, format OutputFormat) error {
	switch format {
	case OutputJSON:
		return writeJSON(w, report)
	default:
		writeClassifyText(w, report)
		return nil
	}
}

func writeClassifyText(w io.Writer, report *models.ClassifyReport) {
	if len(report.Predictions) == 1 && report.Evaluation == nil {
		p := report.Predictions[0]
		fmt.Fprintf(w, "\nPrediction: %s\n", p.Predicted)
		if report.Kind == models.RunKindKNN {
			fmt.Fprintf(w, "k=%d vote=%s metric=%s (%dms)\n", report.K, report.Vote, report.Metric, report.QueryTime)
		} else {
			fmt.Fprintf(w, "heuristic=%s (%dms)\n", report.Kind, report.QueryTime)
		}
		return
	}

	fmt.Fprintf(w, "\nEvaluated %d documents from %s in %dms\n\n",
		len(report.Predictions), report.Dataset, report.QueryTime)

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTEXT\tLABEL\tPREDICTED\tRESULT")
	correct := 0
	for _, p := range report.Predictions {
		marker := "miss"
		if p.Predicted == p.Label {
			marker = "ok"
			correct++
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			p.ID, TruncateWords(p.Text, 6), p.Label, p.Predicted, marker)
	}
	tw.Flush()

	if report.Evaluation != nil {
		fmt.Fprintf(w, "\nAccuracy: %.2f%% (%d of %d correct)\n",
			report.Evaluation.Accuracy*100, correct, len(report.Predictions))
		fmt.Fprintf(w, "Rand index: %.4f\n", report.Evaluation.RandIndex)
		writeConfusion(w, report.Evaluation)
	}
}

// WriteClusterReport writes a clustering report to w in the given
// format.
func WriteClusterReport(w io.Writer, report *models.ClusterReport, format OutputFormat) error {
	switch format {
	case OutputJSON:
		return writeJSON(w, report)
	default:
		writeClusterText(w, report)
		return nil
	}
}

func writeClusterText(w io.Writer, report *models.ClusterReport) {
	fmt.Fprintf(w, "\nClustered %d documents into %d clusters (method=%s metric=%s) in %dms\n\n",
		len(report.Assignment), len(report.Clusters), report.Method, report.Metric, report.QueryTime)

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "CLUSTER\tSIZE\tLABEL\tMEMBERS")
	for _, c := range report.Clusters {
		label := c.Label
		if label == "" {
			label = "-"
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n",
			c.ID, c.Size, label, Truncate(strings.Join(c.Members, ", "), 60))
	}
	tw.Flush()

	if report.Evaluation != nil {
		fmt.Fprintf(w, "\nLabel alignment accuracy: %.2f%%\n", report.Evaluation.Accuracy*100)
		fmt.Fprintf(w, "Rand index: %.4f\n", report.Evaluation.RandIndex)
		writeConfusion(w, report.Evaluation)
	}
}

// WriteDendrogram renders the merge history as a tree rooted at the
// final merge. Leaves show document ids with a text snippet.
func WriteDendrogram(w io.Writer, ds *models.Dataset, merges []cluster.MergeRecord) {
	if len(merges) == 0 {
		fmt.Fprintln(w, "\nDendrogram is empty (fewer than 2 documents).")
		return
	}
	fmt.Fprintln(w, "\nDendrogram:")
	root := len(ds.Documents) + len(merges) - 1
	writeNode(w, ds, merges, root, "", true)
}

func writeNode(w io.Writer, ds *models.Dataset, merges []cluster.MergeRecord, id int, prefix string, last bool) {
	connector, childPrefix := "├─ ", prefix+"│  "
	if last {
		connector, childPrefix = "└─ ", prefix+"   "
	}

	if n := len(ds.Documents); id < n {
		doc := ds.Documents[id]
		fmt.Fprintf(w, "%s%s%s: %s\n", prefix, connector, doc.ID, TruncateWords(doc.Text, 8))
	} else {
		m := merges[id-n]
		fmt.Fprintf(w, "%s%s[%.4f] %d docs\n", prefix, connector, m.Distance, m.Count)
		writeNode(w, ds, merges, m.Left, childPrefix, false)
		writeNode(w, ds, merges, m.Right, childPrefix, true)
	}
}

// WriteRuns writes stored run history to w, newest first.
func WriteRuns(w io.Writer, runs []*models.Run, format OutputFormat) error {
	switch format {
	case OutputJSON:
		return writeJSON(w, runs)
	default:
		writeRunsText(w, runs)
		return nil
	}
}

func writeRunsText(w io.Writer, runs []*models.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "no runs recorded")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tKIND\tDATASET\tACCURACY\tRAND\tCREATED\tPARAMS")
	for _, run := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.3f\t%.3f\t%s\t%s\n",
			run.ID, run.Kind, run.Dataset, run.Accuracy, run.RandIndex,
			run.CreatedAt.Format("2006-01-02 15:04:05"), Truncate(run.Params, 40))
	}
	tw.Flush()
}

func writeConfusion(w io.Writer, eval *evaluate.Result) {
	if len(eval.Labels) == 0 {
		return
	}
	fmt.Fprintln(w, "\nConfusion matrix (rows truth, columns predicted):")
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "\t%s\n", strings.Join(eval.Labels, "\t"))
	for i, label := range eval.Labels {
		cells := make([]string, len(eval.Confusion[i]))
		for j, count := range eval.Confusion[i] {
			cells[j] = strconv.Itoa(count)
		}
		fmt.Fprintf(tw, "%s\t%s\n", label, strings.Join(cells, "\t"))
	}
	tw.Flush()
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Truncate truncates s to maxLen and appends "..." if truncated.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// TruncateWords returns up to maxWords from the space-separated string.
func TruncateWords(s string, maxWords int) string {
	words := strings.Fields(s)
	if len(words) <= maxWords {
		return s
	}
	return strings.Join(words[:maxWords], " ") + "..."
}

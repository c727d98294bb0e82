// Package models defines the data structures shared by the dataset
// loaders, the analysis engine, and the HTTP and CLI surfaces.
package models

// Document is one tweet: raw text, its cleaned form, and labels. The
// ground-truth Label comes from the dataset; Predicted is filled by a
// classifier. Analysis code reads documents and returns labels by
// value, it never mutates the caller's copy.
type Document struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Normalized string `json:"normalized,omitempty"`
	Label      string `json:"label,omitempty"`
	Predicted  string `json:"predicted,omitempty"`
}

// DocumentInput is an inline document in an API request.
type DocumentInput struct {
	Text  string `json:"text"`
	Label string `json:"label,omitempty"`
}

// Dataset is a named, ordered document collection plus where it came
// from. Order matters: document position is the index used by distance
// matrices and cluster assignments.
type Dataset struct {
	Name      string     `json:"name"`
	Path      string     `json:"path,omitempty"`
	Format    string     `json:"format,omitempty"`
	Documents []Document `json:"documents"`
}

// Texts returns the raw texts in document order.
func (d *Dataset) Texts() []string {
	texts := make([]string, len(d.Documents))
	for i, doc := range d.Documents {
		texts[i] = doc.Text
	}
	return texts
}

// NormalizedTexts returns the cleaned texts in document order.
func (d *Dataset) NormalizedTexts() []string {
	texts := make([]string, len(d.Documents))
	for i, doc := range d.Documents {
		texts[i] = doc.Normalized
	}
	return texts
}

// Labels returns the ground-truth labels in document order. Unlabeled
// documents contribute empty strings.
func (d *Dataset) Labels() []string {
	labels := make([]string, len(d.Documents))
	for i, doc := range d.Documents {
		labels[i] = doc.Label
	}
	return labels
}

// LabeledCount reports how many documents carry a ground-truth label.
func (d *Dataset) LabeledCount() int {
	n := 0
	for _, doc := range d.Documents {
		if doc.Label != "" {
			n++
		}
	}
	return n
}

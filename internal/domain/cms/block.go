package cms

import "github.com/bhslighting/backend/internal/domain/shared"

// PlaceholderContent is the sentinel an image block carries while its
// file travels separately as a multipart upload. It must never persist.
const PlaceholderContent = "placeholder"

// BlockKind discriminates article content blocks
type BlockKind string

const (
	BlockKindText  BlockKind = "text"
	BlockKindImage BlockKind = "image"
)

// Block is one unit of article content, either plain text or an image
// reference, ordered within an article
type Block struct {
	ID      string    `json:"id"`
	Kind    BlockKind `json:"type"`
	Content string    `json:"content"`
}

// IsImage reports whether the block references an image file
func (b Block) IsImage() bool {
	return b.Kind == BlockKindImage
}

// IsPlaceholder reports whether the block still awaits an uploaded file
func (b Block) IsPlaceholder() bool {
	return b.IsImage() && b.Content == PlaceholderContent
}

// ErrUnresolvedPlaceholder signals that an update carried more image
// placeholders than uploaded files
var ErrUnresolvedPlaceholder = shared.NewDomainError("UNRESOLVED_PLACEHOLDER", "Not enough uploaded files to resolve all image placeholders")

// ValidateBlocks rejects blocks with an unknown kind or a missing id
func ValidateBlocks(blocks []Block) error {
	for _, b := range blocks {
		if b.ID == "" {
			return shared.NewDomainError("INVALID_BLOCK", "Every block needs an id")
		}
		if b.Kind != BlockKindText && b.Kind != BlockKindImage {
			return shared.NewDomainError("INVALID_BLOCK", "Block type must be text or image")
		}
	}
	return nil
}

// MergeBlocks merges an incoming block sequence with the previously
// stored one and resolves image placeholders against uploaded files.
//
// Each incoming block replaces the stored block with the same id, with
// one exception: an incoming image block carrying the placeholder
// sentinel keeps the stored block's non-empty content, meaning "no new
// upload for this slot, preserve the previous image". Blocks still
// holding the sentinel afterwards consume uploaded filenames in arrival
// order. If placeholders remain once the uploads run out, the merge
// fails with ErrUnresolvedPlaceholder. Surplus uploads are ignored.
//
// The function is pure: output order follows the incoming order and
// none of the inputs are mutated.
func MergeBlocks(existing, incoming []Block, uploaded []string) ([]Block, error) {
	prior := make(map[string]Block, len(existing))
	for _, b := range existing {
		prior[b.ID] = b
	}

	merged := make([]Block, 0, len(incoming))
	for _, in := range incoming {
		out := in
		if old, ok := prior[in.ID]; ok && in.IsPlaceholder() && old.Content != "" {
			out.Content = old.Content
		}
		merged = append(merged, out)
	}

	next := 0
	for i := range merged {
		if !merged[i].IsPlaceholder() {
			continue
		}
		if next >= len(uploaded) {
			return nil, ErrUnresolvedPlaceholder
		}
		merged[i].Content = uploaded[next]
		next++
	}

	return merged, nil
}

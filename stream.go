package sharh

// BuildStream flattens pages into a single block sequence, strictly in the
// order given. Missing (nil) or empty pages contribute nothing.
//
// The first section heading of every page is dropped when it is a book title
// (see Format.isTitle); later headings on the same page are always kept.
// A block violating the block contract fails the whole build.
func BuildStream(pages []*Page, format Format) ([]Block, error) {
	var stream []Block
	for _, page := range pages {
		if page == nil {
			continue
		}

		firstHeading := true
		for i, b := range page.Blocks {
			if err := b.Validate(); err != nil {
				return nil, Errorf(EINVALID, "page %d block %d: %s", page.Index, i, ErrorMessage(err))
			}

			if b.Kind == KindSectionHeading && firstHeading {
				firstHeading = false
				if format.isTitle(b.Text) {
					continue
				}
			}
			stream = append(stream, b)
		}
	}
	return stream, nil
}

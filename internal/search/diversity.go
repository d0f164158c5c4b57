package search

// diversify enforces entity diversity over score-ordered results. Keyword
// scoring tends to stack multiple chunks from the same entity at the top,
// which produces redundant evidence for broad questions. The first pass
// takes at most maxPerEntity chunks per entity in score order; when that
// yields fewer than topK results, remaining chunks backfill in score order
// past the cap.
func diversify(results []scoredChunk, topK, maxPerEntity int) []scoredChunk {
	if len(results) == 0 {
		return nil
	}

	out := make([]scoredChunk, 0, topK)
	perEntity := make(map[string]int)
	taken := make(map[string]struct{})

	for _, r := range results {
		if len(out) >= topK {
			break
		}
		entity := r.chunk.Metadata.Entity
		if perEntity[entity] >= maxPerEntity {
			continue
		}
		out = append(out, r)
		taken[r.chunk.ID] = struct{}{}
		perEntity[entity]++
	}

	if len(out) < topK {
		for _, r := range results {
			if len(out) >= topK {
				break
			}
			if _, dup := taken[r.chunk.ID]; dup {
				continue
			}
			// Insert at the score-correct position so the final list stays
			// ordered despite the diversity pass having skipped this chunk.
			idx := len(out)
			for i, existing := range out {
				if r.score > existing.score {
					idx = i
					break
				}
			}
			out = append(out, scoredChunk{})
			copy(out[idx+1:], out[idx:])
			out[idx] = r
			taken[r.chunk.ID] = struct{}{}
		}
	}

	return out
}

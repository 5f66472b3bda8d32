package qm

// Minimize runs the Quine-McCluskey reduction of spec.md §4.5 over
// implicants and returns the resulting set of prime implicants: bucket by
// NbYes, merge adjacent buckets (pass 1), merge within a bucket after pass 1
// (pass 2), then repeat the whole round against the previous round's raw
// (pre-dedup) count until it stops changing; only then dedup and sort.
//
// The size comparison and the dedup placement both follow
// original_source/src/mccluskey.rs's mccluskey_primes: `size_before` starts
// as the input's raw length, each round compares against the raw length of
// that round's output, and the HashSet dedup only happens once, after the
// loop exits, in mccluskey (not inside mccluskey_primes itself). Deduping
// every round instead would change which implicants are still around to
// pair up on the next round, which can change the fixed point reached.
func Minimize(implicants []Implicant) []Implicant {
	sizeBefore := len(implicants)
	buckets := bucketByNbYes(implicants)
	for {
		next := mergeWithinBuckets(mergeAdjacentBuckets(buckets))
		if len(next) == sizeBefore {
			return dedupeAndSort(next)
		}
		sizeBefore = len(next)
		buckets = bucketByNbYes(next)
	}
}

// bucketByNbYes groups implicants by their NbYes() count, preserving every
// integer bucket from 0 to the maximum NbYes seen (inclusive) even if empty,
// so a gap in occupied buckets never shifts which buckets are "adjacent"
// (spec.md §4.5).
func bucketByNbYes(implicants []Implicant) [][]Implicant {
	maxYes := 0
	for _, im := range implicants {
		if n := im.Vec.NbYes(); n > maxYes {
			maxYes = n
		}
	}
	buckets := make([][]Implicant, maxYes+1)
	for _, im := range implicants {
		n := im.Vec.NbYes()
		buckets[n] = append(buckets[n], im)
	}
	return buckets
}

// findMergePartner returns the index of the first implicant in others that
// prime can merge with, mirroring original_source/src/mccluskey.rs's
// merge_similar: a first-match search, not an exhaustive one, because the
// caller removes the match from others once found so it cannot be claimed
// again by a later prime in the same pass.
func findMergePartner(prime Implicant, others []Implicant) (int, bool) {
	for i, other := range others {
		if prime.Vec.CanMerge(other.Vec) {
			return i, true
		}
	}
	return 0, false
}

// mergeAdjacentBuckets merges implicants drawn from adjacent NbYes buckets
// (pass 1 of spec.md §4.5). For each bucket k from low to high, every
// implicant in k is matched at most once against the implicants still left
// in bucket k+1: a match removes the partner from k+1 and the merge result
// joins the output in place of both; no match leaves the bucket-k implicant
// in the output unchanged. Bucket k+1, with matched partners now missing,
// carries forward to be bucket k on the next iteration, so an implicant can
// still be consumed by a later pairing even if it survived this one. The
// highest bucket — whatever is left in it once every lower bucket has had
// its turn — is appended verbatim at the end.
//
// This is first-match, one-to-one pairing, not all-pairs merging: it
// follows original_source/src/mccluskey.rs's mccluskey_pass_one exactly
// (`match merge_similar(now[base_id], next) { Some(new) => to_add.push(new),
// None => to_add.push(now[base_id]) }`), which is also why an implicant
// that already has a coarser match sitting in the next bucket gets absorbed
// into it instead of both surviving side by side (spec.md §9's "absorbed by
// a higher merge" note describes the opposite failure mode: a base
// implicant whose rightful partner was already claimed by a different
// pairing this round still comes out unmerged, not that this pass keeps
// both a merge and its inputs on purpose).
func mergeAdjacentBuckets(buckets [][]Implicant) []Implicant {
	var result []Implicant
	for i := 0; i < len(buckets)-1; i++ {
		now := buckets[i]
		next := append([]Implicant(nil), buckets[i+1]...)
		for _, a := range now {
			if j, ok := findMergePartner(a, next); ok {
				result = append(result, Implicant{Vec: a.Vec.Merge(next[j].Vec)})
				next = append(next[:j], next[j+1:]...)
			} else {
				result = append(result, a)
			}
		}
		buckets[i+1] = next
	}
	if len(buckets) > 0 {
		result = append(result, buckets[len(buckets)-1]...)
	}
	return result
}

// mergeWithinBuckets merges implicants within the same NbYes bucket after
// pass 1 has introduced Anys (pass 2 of spec.md §4.5): each bucket is
// consumed from the end, popping an implicant and matching it at most once
// against whatever is still left in that same bucket, exactly
// original_source/src/mccluskey.rs's mccluskey_pass_two
// (`while let Some(curr) = now.pop() { match merge_similar(curr, &mut now)
// {...} }`), applied bucket by bucket.
func mergeWithinBuckets(implicants []Implicant) []Implicant {
	buckets := bucketByNbYes(implicants)
	var result []Implicant
	for bi := len(buckets) - 1; bi >= 0; bi-- {
		bucket := append([]Implicant(nil), buckets[bi]...)
		for len(bucket) > 0 {
			curr := bucket[len(bucket)-1]
			bucket = bucket[:len(bucket)-1]
			if j, ok := findMergePartner(curr, bucket); ok {
				result = append(result, Implicant{Vec: curr.Vec.Merge(bucket[j].Vec)})
				bucket = append(bucket[:j], bucket[j+1:]...)
			} else {
				result = append(result, curr)
			}
		}
	}
	return result
}

// dedupeAndSort removes duplicate vectors (a plain map keyed by trit.Vector
// needs no custom hash, since Vector is a comparable pair of uint64 words)
// and sorts the result lexicographically by string form for a deterministic
// output order.
func dedupeAndSort(implicants []Implicant) []Implicant {
	seen := make(map[Implicant]struct{}, len(implicants))
	out := make([]Implicant, 0, len(implicants))
	for _, im := range implicants {
		if _, ok := seen[im]; ok {
			continue
		}
		seen[im] = struct{}{}
		out = append(out, im)
	}
	sortImplicants(out)
	return out
}

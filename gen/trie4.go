package gen

// TrieDepth returns the radix-4 trie depth covering keys [0, n), with a
// minimum of 1.
func TrieDepth(n uint32) uint32 {
	if n <= 4 {
		return 1
	}
	depth, capacity := uint32(1), uint32(4)
	for capacity < n {
		depth++
		capacity *= 4
	}

	return depth
}

// trieOps holds the plain radix-4 trie definitions: point lookup
// defaulting to @INF and path-copying insert. Keys are consumed two bits
// at a time, low bits first; a lookup or update touches depth nodes.
const trieOps = `@q4_get = λ&key. λ&depth. λ{
  #QE: @INF;
  #QL: λval. val;
  #Q: λ&c0. λ&c1. λ&c2. λ&c3.
    ! &slot = key % 4;
    ! &next = key / 4;
    ! &nd = depth - 1;
    λ{0: @q4_get(next,nd,c0); 1: @q4_get(next,nd,c1); 2: @q4_get(next,nd,c2); λn. @q4_get(next,nd,c3)}(slot)
}

@q4_set = λ&key. λ&val. λ&depth. λ{
  #QL: λold. #QL{val};
  #QE: λ{0: #QL{val}; λn.
    ! &slot = key % 4; ! &next = key / 4; ! &nd = depth - 1;
    @q4_set_slot(slot, @q4_set(next, val, nd, #QE{}))}(depth);
  #Q: λ&c0. λ&c1. λ&c2. λ&c3.
    ! &slot = key % 4; ! &next = key / 4; ! &nd = depth - 1;
    λ{0: #Q{@q4_set(next,val,nd,c0),c1,c2,c3};
    1: #Q{c0,@q4_set(next,val,nd,c1),c2,c3};
    2: #Q{c0,c1,@q4_set(next,val,nd,c2),c3};
    λn. #Q{c0,c1,c2,@q4_set(next,val,nd,c3)}}(slot)
}

@q4_set_slot = λ&slot. λ&child. λ{
  0: #Q{child, #QE{}, #QE{}, #QE{}};
  1: #Q{#QE{}, child, #QE{}, #QE{}};
  2: #Q{#QE{}, #QE{}, child, #QE{}};
  λn. #Q{#QE{}, #QE{}, #QE{}, child}
}(slot)
`

// trieHybridOps holds the hybrid-template trie family. The linear get
// threads the trie back out so the caller keeps a usable copy, and the
// min-update returns #P{trie', changed} so relaxation rounds can detect
// a fixed point. Slot dispatch lives in per-shape helper definitions so
// the branch children are consumed exactly once per path.
const trieHybridOps = `@q4_get_lin = λ&key. λ&depth. λ{#QE: #P{@INF, #QE{}}; #QL: λ&val. #P{val, #QL{val}}; #Q: λc0. λc1. λc2. λc3. ! slot = key % 4; ! next = key / 4; ! nd = depth - 1; @q4_get_lin_Q(slot, next, nd, c0, c1, c2, c3)}
@q4_get_lin_Q = λ{0: λnext. λnd. λc0. λc1. λc2. λc3. λ{#P: λval. λnew_c0. #P{val, #Q{new_c0, c1, c2, c3}}}(@q4_get_lin(next, nd, c0)); 1: λnext. λnd. λc0. λc1. λc2. λc3. λ{#P: λval. λnew_c1. #P{val, #Q{c0, new_c1, c2, c3}}}(@q4_get_lin(next, nd, c1)); 2: λnext. λnd. λc0. λc1. λc2. λc3. λ{#P: λval. λnew_c2. #P{val, #Q{c0, c1, new_c2, c3}}}(@q4_get_lin(next, nd, c2)); λn. λnext. λnd. λc0. λc1. λc2. λc3. λ{#P: λval. λnew_c3. #P{val, #Q{c0, c1, c2, new_c3}}}(@q4_get_lin(next, nd, c3))}
@q4_get = λ&key. λ&depth. λ{#QE: @INF; #QL: λval. val; #Q: λc0. λc1. λc2. λc3. ! slot = key % 4; ! next = key / 4; ! nd = depth - 1; @q4_get_Q(slot, next, nd, c0, c1, c2, c3)}
@q4_get_Q = λ{0: λnext. λnd. λc0. λc1. λc2. λc3. @q4_get(next, nd, c0); 1: λnext. λnd. λc0. λc1. λc2. λc3. @q4_get(next, nd, c1); 2: λnext. λnd. λc0. λc1. λc2. λc3. @q4_get(next, nd, c2); λn. λnext. λnd. λc0. λc1. λc2. λc3. @q4_get(next, nd, c3)}
@q4_set = λ&key. λ&val. λ&depth. λ{#QL: λold. #QL{val}; #QE: λ{0: #QL{val}; λn. ! slot = key % 4; ! next = key / 4; ! nd = depth - 1; @q4_set_QE(slot, next, val, nd)}(depth); #Q: λc0. λc1. λc2. λc3. ! slot = key % 4; ! next = key / 4; ! nd = depth - 1; @q4_set_Q(slot, next, val, nd, c0, c1, c2, c3)}
@q4_set_QE = λ{0: λnext. λval. λnd. #Q{@q4_set(next, val, nd, #QE{}), #QE{}, #QE{}, #QE{}}; 1: λnext. λval. λnd. #Q{#QE{}, @q4_set(next, val, nd, #QE{}), #QE{}, #QE{}}; 2: λnext. λval. λnd. #Q{#QE{}, #QE{}, @q4_set(next, val, nd, #QE{}), #QE{}}; λn. λnext. λval. λnd. #Q{#QE{}, #QE{}, #QE{}, @q4_set(next, val, nd, #QE{})}}
@q4_set_Q = λ{0: λnext. λval. λnd. λc0. λc1. λc2. λc3. #Q{@q4_set(next, val, nd, c0), c1, c2, c3}; 1: λnext. λval. λnd. λc0. λc1. λc2. λc3. #Q{c0, @q4_set(next, val, nd, c1), c2, c3}; 2: λnext. λval. λnd. λc0. λc1. λc2. λc3. #Q{c0, c1, @q4_set(next, val, nd, c2), c3}; λn. λnext. λval. λnd. λc0. λc1. λc2. λc3. #Q{c0, c1, c2, @q4_set(next, val, nd, c3)}}
@q4_min_update_f = λ&key. λ&val. λ&depth. λ{#QL: λ&old. λ{0: #P{#QL{old}, 0}; λn. #P{#QL{val}, 1}}(val < old); #QE: λ{0: #P{#QL{val}, 1}; λn. ! slot = key % 4; ! next = key / 4; ! nd = depth - 1; @q4_muf_QE(slot, next, val, nd)}(depth); #Q: λc0. λc1. λc2. λc3. ! slot = key % 4; ! next = key / 4; ! nd = depth - 1; @q4_muf_Q(slot, next, val, nd, c0, c1, c2, c3)}
@q4_muf_QE = λ{0: λnext. λval. λnd. λ{#P: λchild. λc. #P{#Q{child, #QE{}, #QE{}, #QE{}}, c}}(@q4_min_update_f(next, val, nd, #QE{})); 1: λnext. λval. λnd. λ{#P: λchild. λc. #P{#Q{#QE{}, child, #QE{}, #QE{}}, c}}(@q4_min_update_f(next, val, nd, #QE{})); 2: λnext. λval. λnd. λ{#P: λchild. λc. #P{#Q{#QE{}, #QE{}, child, #QE{}}, c}}(@q4_min_update_f(next, val, nd, #QE{})); λn. λnext. λval. λnd. λ{#P: λchild. λc. #P{#Q{#QE{}, #QE{}, #QE{}, child}, c}}(@q4_min_update_f(next, val, nd, #QE{}))}
@q4_muf_Q = λ{0: λnext. λval. λnd. λc0. λc1. λc2. λc3. λ{#P: λnew_c0. λc. #P{#Q{new_c0, c1, c2, c3}, c}}(@q4_min_update_f(next, val, nd, c0)); 1: λnext. λval. λnd. λc0. λc1. λc2. λc3. λ{#P: λnew_c1. λc. #P{#Q{c0, new_c1, c2, c3}, c}}(@q4_min_update_f(next, val, nd, c1)); 2: λnext. λval. λnd. λc0. λc1. λc2. λc3. λ{#P: λnew_c2. λc. #P{#Q{c0, c1, new_c2, c3}, c}}(@q4_min_update_f(next, val, nd, c2)); λn. λnext. λval. λnd. λc0. λc1. λc2. λc3. λ{#P: λnew_c3. λc. #P{#Q{c0, c1, c2, new_c3}, c}}(@q4_min_update_f(next, val, nd, c3))}
`

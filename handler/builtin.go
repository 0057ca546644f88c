package handler

import "github.com/coffee-fueled-dev/statespace/codec"

// withReplaced returns a copy of slots with the value at i replaced by v.
func withReplaced(slots []codec.Symbol, i int, v codec.Symbol) []codec.Symbol {
	out := make([]codec.Symbol, len(slots))
	copy(out, slots)
	out[i] = v
	return out
}

// startHandler takes/places at slot 0. Registered under "start" and "top".
type startHandler struct{}

func (startHandler) Extract(slots []codec.Symbol) []Take {
	if len(slots) == 0 || slots[0] == codec.Empty {
		return nil
	}
	return []Take{{Elem: slots[0], After: withReplaced(slots, 0, codec.Empty)}}
}

func (startHandler) Insert(slots []codec.Symbol, elem codec.Symbol, _ MoveContext) []Place {
	if len(slots) == 0 || slots[0] != codec.Empty {
		return nil
	}
	return []Place{{After: withReplaced(slots, 0, elem)}}
}

// endHandler takes/places at the last slot. Registered under "end" and "bottom".
type endHandler struct{}

func (endHandler) Extract(slots []codec.Symbol) []Take {
	if len(slots) == 0 {
		return nil
	}
	last := len(slots) - 1
	if slots[last] == codec.Empty {
		return nil
	}
	return []Take{{Elem: slots[last], After: withReplaced(slots, last, codec.Empty)}}
}

func (endHandler) Insert(slots []codec.Symbol, elem codec.Symbol, _ MoveContext) []Place {
	if len(slots) == 0 {
		return nil
	}
	last := len(slots) - 1
	if slots[last] != codec.Empty {
		return nil
	}
	return []Place{{After: withReplaced(slots, last, elem)}}
}

// anyHandler enumerates every non-empty slot for extract and every empty
// slot for insert. Registered under "any" and "middle".
type anyHandler struct{}

func (anyHandler) Extract(slots []codec.Symbol) []Take {
	var takes []Take
	for i, s := range slots {
		if s != codec.Empty {
			takes = append(takes, Take{Elem: s, After: withReplaced(slots, i, codec.Empty)})
		}
	}
	return takes
}

func (anyHandler) Insert(slots []codec.Symbol, elem codec.Symbol, _ MoveContext) []Place {
	var places []Place
	for i, s := range slots {
		if s == codec.Empty {
			places = append(places, Place{After: withReplaced(slots, i, elem)})
		}
	}
	return places
}

// stackHandler takes the topmost non-empty slot scanning from index 0, and
// places into the first empty slot scanning from the opposite end (the
// last index backward). Registered under "stack".
type stackHandler struct{}

func (stackHandler) Extract(slots []codec.Symbol) []Take {
	for i, s := range slots {
		if s != codec.Empty {
			return []Take{{Elem: s, After: withReplaced(slots, i, codec.Empty)}}
		}
	}
	return nil
}

func (stackHandler) Insert(slots []codec.Symbol, elem codec.Symbol, _ MoveContext) []Place {
	for i := len(slots) - 1; i >= 0; i-- {
		if slots[i] == codec.Empty {
			return []Place{{After: withReplaced(slots, i, elem)}}
		}
	}
	return nil
}

func init() {
	Register("start", startHandler{})
	Register("top", startHandler{})
	Register("end", endHandler{})
	Register("bottom", endHandler{})
	Register("any", anyHandler{})
	Register("middle", anyHandler{})
	Register("stack", stackHandler{})
}

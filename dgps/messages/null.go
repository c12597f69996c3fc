package messages

// type 6 carries no payload: its frame, if any, is read and discarded by
// the caller. There is nothing to decode here; the type exists so the
// dispatcher has a named case for it.

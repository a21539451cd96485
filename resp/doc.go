// Package resp builds the uniform success/failure envelope returned by
// every API operation and writes it over gin.
//
// The envelope carries a success flag, a human-readable message, the
// payload, and a total. The three page fields appear only on envelopes
// built by OKPage:
//
//	{"success": true, "message": "Success", "data": [...], "total": 25,
//	 "page": 1, "pageSize": 10, "totalPages": 3}
//
// Whether a payload is a collection is a compile-time decision made by
// choosing the constructor — OKData for scalars, OKList for sequences —
// never a reflective inspection of the value. A string payload therefore
// counts as one item, not as a sequence of characters, and an empty list
// collapses to the bare OK envelope with a null payload.
package resp

package book

type ErrResponse struct {
	Code    int    `json:"error_code"`
	Message string `json:"error_message"`
}

func (e ErrResponse) Error() string {
	return e.Message
}

var ErrResponseBookEntryBlankFields = ErrResponse{100, "all the fields - title, author, pages, bookcount and price - must be filled correctly."}
var ErrResponseBookNotFound = ErrResponse{101, "book not found"}
var ErrResponseIdInvalidFormat = ErrResponse{103, "the id is not a valid format. Must be a positive integer"}
var ErrResponseSortDirectionInvalid = ErrResponse{105, "'direction' must be ascending or descending."}
var ErrResponseSeedInvalid = ErrResponse{108, "seed books must have unique positive ids"}
var ErrResponseFormatInvalid = ErrResponse{115, "'format' must be text or json."}

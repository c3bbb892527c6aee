package book

type Book struct {
	ID        int
	Title     string
	Author    string
	Pages     string
	BookCount string
	Price     string
}

type CreateBookRequest struct {
	Title     string
	Author    string
	Pages     string
	BookCount string
	Price     string
}

type UpdateBookRequest struct {
	ID        int
	Title     string
	Author    string
	Pages     string
	BookCount string
	Price     string
}

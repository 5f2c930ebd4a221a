package book

// createRequest is the POST /books payload.
type createRequest struct {
	Title         string  `json:"title" validate:"required,min=1,max=255"`
	Author        string  `json:"author" validate:"required,min=1,max=255"`
	ISBN          string  `json:"isbn" validate:"required,min=10,max=20"`
	Description   *string `json:"description"`
	Pages         *int    `json:"pages" validate:"omitnil,gte=0"`
	PublishedYear *int    `json:"publishedYear"`
}

func (req createRequest) toInput() CreateInput {
	return CreateInput{
		Title:         req.Title,
		Author:        req.Author,
		ISBN:          req.ISBN,
		Description:   req.Description,
		Pages:         req.Pages,
		PublishedYear: req.PublishedYear,
	}
}

// updateRequest is the PUT/PATCH /books/{id} payload. Both entry points share
// it: fields absent from the body stay nil and are never applied.
type updateRequest struct {
	Title         *string `json:"title" validate:"omitnil,min=1,max=255"`
	Author        *string `json:"author" validate:"omitnil,min=1,max=255"`
	ISBN          *string `json:"isbn" validate:"omitnil,min=10,max=20"`
	Description   *string `json:"description"`
	Pages         *int    `json:"pages" validate:"omitnil,gte=0"`
	PublishedYear *int    `json:"publishedYear"`
}

func (req updateRequest) toInput() UpdateInput {
	return UpdateInput{
		Title:         req.Title,
		Author:        req.Author,
		ISBN:          req.ISBN,
		Description:   req.Description,
		Pages:         req.Pages,
		PublishedYear: req.PublishedYear,
	}
}

// pageResponse is the list/search response body.
type pageResponse struct {
	CurrentPage  int    `json:"currentPage"`
	PageSize     int    `json:"pageSize"`
	TotalPages   int    `json:"totalPages"`
	TotalRecords int    `json:"totalRecords"`
	Data         []Book `json:"data"`
}

func newPageResponse(page, pageSize, total int, books []Book) pageResponse {
	if books == nil {
		books = []Book{}
	}
	return pageResponse{
		CurrentPage:  page,
		PageSize:     pageSize,
		TotalPages:   (total + pageSize - 1) / pageSize,
		TotalRecords: total,
		Data:         books,
	}
}

// AngelaMos | 2026
// dto.go

package link

type CreateLinkRequest struct {
	Name  string `json:"name"  validate:"required,min=3,max=64"`
	Price *int   `json:"price" validate:"required,gte=0,lte=1000"`
}

type UpdateLinkRequest struct {
	Name  string `json:"name"  validate:"required,min=3,max=64"`
	Price *int   `json:"price" validate:"required,gte=0,lte=1000"`
}

type LinkResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
	URL   string `json:"link"`
}

type LinkListResponse struct {
	Links []LinkResponse `json:"links"`
}

func ToLinkResponse(l *Link) LinkResponse {
	return LinkResponse{
		ID:    l.ID,
		Name:  l.Name,
		Price: l.Price,
		URL:   l.URL,
	}
}

func ToLinkResponseList(links []Link) []LinkResponse {
	responses := make([]LinkResponse, 0, len(links))
	for _, l := range links {
		responses = append(responses, ToLinkResponse(&l))
	}
	return responses
}

package dto

type SecretaryResponse struct {
	SecretaryID int    `json:"secertary_id"`
	Name        string `json:"name"`
}

type SecretaryListResponse struct {
	Secretaries []SecretaryResponse `json:"secretaries"`
	Total       int                 `json:"total"`
}

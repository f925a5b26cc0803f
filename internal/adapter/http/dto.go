package httpadapter

import (
	"time"

	"postcraft/internal/core/domain"
	"postcraft/internal/core/port"
)

type createdResponse struct {
	ID string `json:"id"`
}

type companyRequest struct {
	Name          string   `json:"name"`
	WebsiteURL    string   `json:"websiteUrl"`
	Description   string   `json:"description"`
	LogoFileRef   string   `json:"logoFileRef"`
	AssetFileRefs []string `json:"assetFileRefs"`
}

func (req companyRequest) input() port.CompanyInput {
	return port.CompanyInput{
		Name:          req.Name,
		WebsiteURL:    req.WebsiteURL,
		Description:   req.Description,
		LogoFileRef:   req.LogoFileRef,
		AssetFileRefs: req.AssetFileRefs,
	}
}

type companyResponse struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"ownerId"`
	Name          string    `json:"name"`
	WebsiteURL    string    `json:"websiteUrl,omitempty"`
	Description   string    `json:"description,omitempty"`
	LogoFileRef   string    `json:"logoFileRef,omitempty"`
	AssetFileRefs []string  `json:"assetFileRefs"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func newCompanyResponse(c domain.Company) companyResponse {
	refs := c.AssetFileRefs
	if refs == nil {
		refs = []string{}
	}
	return companyResponse{
		ID:            c.ID,
		OwnerID:       string(c.OwnerID),
		Name:          c.Name,
		WebsiteURL:    c.WebsiteURL,
		Description:   c.Description,
		LogoFileRef:   c.LogoFileRef,
		AssetFileRefs: refs,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

type campaignRequest struct {
	Name               string `json:"name"`
	CompanyID          string `json:"companyId"`
	ProductImageRef    string `json:"productImageRef"`
	LayoutImageRef     string `json:"layoutImageRef"`
	Instructions       string `json:"instructions"`
	ProductDescription string `json:"productDescription"`
}

func (req campaignRequest) input() port.CampaignInput {
	return port.CampaignInput{
		Name:               req.Name,
		CompanyID:          req.CompanyID,
		ProductImageRef:    req.ProductImageRef,
		LayoutImageRef:     req.LayoutImageRef,
		Instructions:       req.Instructions,
		ProductDescription: req.ProductDescription,
	}
}

type campaignResponse struct {
	ID                  string        `json:"id"`
	OwnerID             string        `json:"ownerId"`
	Name                string        `json:"name"`
	CompanyID           string        `json:"companyId"`
	ProductImageRef     string        `json:"productImageRef,omitempty"`
	LayoutImageRef      string        `json:"layoutImageRef,omitempty"`
	Instructions        string        `json:"instructions,omitempty"`
	ProductDescription  string        `json:"productDescription,omitempty"`
	Status              string        `json:"status"`
	SelectedPostIndices []int         `json:"selectedPostIndices"`
	Posts               []domain.Post `json:"posts,omitempty"`
	CreatedAt           time.Time     `json:"createdAt"`
	UpdatedAt           time.Time     `json:"updatedAt"`
}

func newCampaignResponse(c domain.Campaign, ps *domain.PostSet) campaignResponse {
	resp := campaignResponse{
		ID:                  c.ID,
		OwnerID:             string(c.OwnerID),
		Name:                c.Name,
		CompanyID:           c.CompanyID,
		ProductImageRef:     c.ProductImageRef,
		LayoutImageRef:      c.LayoutImageRef,
		Instructions:        c.Instructions,
		ProductDescription:  c.ProductDescription,
		Status:              string(c.Status),
		SelectedPostIndices: c.SelectedPostIndices,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
	if ps != nil {
		resp.Posts = ps.Posts
	}
	return resp
}

type generateRequest struct {
	Layout             string `json:"layout"`
	Instructions       string `json:"instructions"`
	ProductDescription string `json:"productDescription"`
}

type postSetResponse struct {
	ID         string        `json:"id"`
	CampaignID string        `json:"campaignId"`
	Posts      []domain.Post `json:"posts"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

func newPostSetResponse(ps *domain.PostSet) postSetResponse {
	posts := ps.Posts
	if posts == nil {
		posts = []domain.Post{}
	}
	return postSetResponse{
		ID:         ps.ID,
		CampaignID: ps.CampaignID,
		Posts:      posts,
		CreatedAt:  ps.CreatedAt,
		UpdatedAt:  ps.UpdatedAt,
	}
}

type editPromptRequest struct {
	EditPrompt string `json:"editPrompt"`
}

type selectionRequest struct {
	SelectedPostIndices []int `json:"selectedPostIndices"`
}

type uploadURLResponse struct {
	UploadURL string    `json:"uploadUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type uploadResponse struct {
	StorageID string `json:"storageId"`
}

package repository

import (
	"context"
	"sort"

	"staffing_service/internal/domain/entities"
	"staffing_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

const (
	defaultServiceRequestsTableName = "service_requests"
	defaultServiceOffersTableName   = "service_offers"
)

type criteriaItem struct {
	Skills         []string `dynamodbav:"skills"`
	Certifications []string `dynamodbav:"certifications"`
	Languages      []string `dynamodbav:"languages"`
}

type serviceRequestItem struct {
	ID              string       `dynamodbav:"id"`
	Title           string       `dynamodbav:"title"`
	RoleName        string       `dynamodbav:"role_name"`
	Technology      string       `dynamodbav:"technology"`
	Specialization  string       `dynamodbav:"specialization"`
	ExperienceLevel string       `dynamodbav:"experience_level"`
	StartDate       string       `dynamodbav:"start_date"`
	EndDate         string       `dynamodbav:"end_date"`
	ExpectedManDays int          `dynamodbav:"expected_man_days"`
	Criteria        criteriaItem `dynamodbav:"criteria"`
	Status          string       `dynamodbav:"status"`
	TaskDescription string       `dynamodbav:"task_description"`
	OfferDeadline   string       `dynamodbav:"offer_deadline,omitempty"`
	ProcessID       string       `dynamodbav:"process_id"`
	CreatedAt       string       `dynamodbav:"created_at"`
	UpdatedAt       string       `dynamodbav:"updated_at"`
	Version         int64        `dynamodbav:"version"`
}

type serviceOfferItem struct {
	ID               string `dynamodbav:"id"`
	ExternalID       string `dynamodbav:"external_id"`
	ServiceRequestID string `dynamodbav:"service_request_id"`
	ProviderID       string `dynamodbav:"provider_id"`
	ProviderName     string `dynamodbav:"provider_name"`
	SpecialistID     string `dynamodbav:"specialist_id"`
	SpecialistName   string `dynamodbav:"specialist_name"`
	Status           string `dynamodbav:"status"`
	DailyRate        string `dynamodbav:"daily_rate"`
	TravelCost       string `dynamodbav:"travel_cost"`
	TotalCost        string `dynamodbav:"total_cost"`
	Notes            string `dynamodbav:"notes"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
	Version          int64  `dynamodbav:"version"`
}

// ServiceRequestDynamoRepository persists ServiceRequest entities.
//
// Table requirements:
//   - PK: id (string)
type ServiceRequestDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IServiceRequestRepository = (*ServiceRequestDynamoRepository)(nil)

func NewServiceRequestDynamoRepository(ddb dynamoAPI) *ServiceRequestDynamoRepository {
	return &ServiceRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_REQUESTS_TABLE", defaultServiceRequestsTableName),
	}
}

func (r *ServiceRequestDynamoRepository) Create(ctx context.Context, req entities.ServiceRequest) (entities.ServiceRequest, error) {
	req.Version = 1
	if err := r.put(ctx, req, 0); err != nil {
		return entities.ServiceRequest{}, err
	}
	return req, nil
}

func (r *ServiceRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	item, err := getItem(ctx, r.ddb, r.tableName, id)
	if err != nil || len(item) == 0 {
		return entities.ServiceRequest{}, err
	}
	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

func (r *ServiceRequestDynamoRepository) List(ctx context.Context, status entities.ServiceRequestStatus) ([]entities.ServiceRequest, error) {
	attr := ""
	if status != "" {
		attr = "status"
	}
	items, err := scanAll(ctx, r.ddb, r.tableName, attr, string(status))
	if err != nil {
		return nil, err
	}
	var its []serviceRequestItem
	if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
		return nil, err
	}
	out := make([]entities.ServiceRequest, 0, len(its))
	for _, it := range its {
		out = append(out, fromServiceRequestItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *ServiceRequestDynamoRepository) Update(ctx context.Context, req entities.ServiceRequest) (entities.ServiceRequest, error) {
	read := req.Version
	req.Version++
	if err := r.put(ctx, req, read); err != nil {
		return entities.ServiceRequest{}, err
	}
	return req, nil
}

func (r *ServiceRequestDynamoRepository) put(ctx context.Context, req entities.ServiceRequest, readVersion int64) error {
	av, err := attributevalue.MarshalMap(toServiceRequestItem(req))
	if err != nil {
		return err
	}
	return conditionalPut(ctx, r.ddb, r.tableName, av, readVersion)
}

// ServiceOfferDynamoRepository persists ServiceOffer entities.
//
// Table requirements:
//   - PK: id (string)
type ServiceOfferDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IServiceOfferRepository = (*ServiceOfferDynamoRepository)(nil)

func NewServiceOfferDynamoRepository(ddb dynamoAPI) *ServiceOfferDynamoRepository {
	return &ServiceOfferDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_OFFERS_TABLE", defaultServiceOffersTableName),
	}
}

func (r *ServiceOfferDynamoRepository) Create(ctx context.Context, o entities.ServiceOffer) (entities.ServiceOffer, error) {
	o.Version = 1
	if err := r.put(ctx, o, 0); err != nil {
		return entities.ServiceOffer{}, err
	}
	return o, nil
}

func (r *ServiceOfferDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOffer, error) {
	item, err := getItem(ctx, r.ddb, r.tableName, id)
	if err != nil || len(item) == 0 {
		return entities.ServiceOffer{}, err
	}
	var it serviceOfferItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.ServiceOffer{}, err
	}
	return fromServiceOfferItem(it), nil
}

func (r *ServiceOfferDynamoRepository) List(ctx context.Context, filter entities.ServiceOfferFilter) ([]entities.ServiceOffer, error) {
	attr := ""
	if filter.ServiceRequestID != "" {
		attr = "service_request_id"
	}
	items, err := scanAll(ctx, r.ddb, r.tableName, attr, filter.ServiceRequestID)
	if err != nil {
		return nil, err
	}
	var its []serviceOfferItem
	if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
		return nil, err
	}
	out := make([]entities.ServiceOffer, 0, len(its))
	for _, it := range its {
		if o := fromServiceOfferItem(it); filter.Matches(o) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *ServiceOfferDynamoRepository) Update(ctx context.Context, o entities.ServiceOffer) (entities.ServiceOffer, error) {
	read := o.Version
	o.Version++
	if err := r.put(ctx, o, read); err != nil {
		return entities.ServiceOffer{}, err
	}
	return o, nil
}

func (r *ServiceOfferDynamoRepository) put(ctx context.Context, o entities.ServiceOffer, readVersion int64) error {
	av, err := attributevalue.MarshalMap(toServiceOfferItem(o))
	if err != nil {
		return err
	}
	return conditionalPut(ctx, r.ddb, r.tableName, av, readVersion)
}

func toServiceRequestItem(r entities.ServiceRequest) serviceRequestItem {
	return serviceRequestItem{
		ID:              r.ID,
		Title:           r.Title,
		RoleName:        r.RoleName,
		Technology:      r.Technology,
		Specialization:  r.Specialization,
		ExperienceLevel: string(r.ExperienceLevel),
		StartDate:       formatTime(r.StartDate),
		EndDate:         formatTime(r.EndDate),
		ExpectedManDays: r.ExpectedManDays,
		Criteria: criteriaItem{
			Skills:         r.Criteria.Skills,
			Certifications: r.Criteria.Certifications,
			Languages:      r.Criteria.Languages,
		},
		Status:          string(r.Status),
		TaskDescription: r.TaskDescription,
		OfferDeadline:   formatTimePtr(r.OfferDeadline),
		ProcessID:       r.ProcessID,
		CreatedAt:       formatTime(r.CreatedAt),
		UpdatedAt:       formatTime(r.UpdatedAt),
		Version:         r.Version,
	}
}

func fromServiceRequestItem(it serviceRequestItem) entities.ServiceRequest {
	return entities.ServiceRequest{
		ID:              it.ID,
		Title:           it.Title,
		RoleName:        it.RoleName,
		Technology:      it.Technology,
		Specialization:  it.Specialization,
		ExperienceLevel: entities.ExperienceLevel(it.ExperienceLevel),
		StartDate:       parseTime(it.StartDate),
		EndDate:         parseTime(it.EndDate),
		ExpectedManDays: it.ExpectedManDays,
		Criteria: entities.RequestCriteria{
			Skills:         it.Criteria.Skills,
			Certifications: it.Criteria.Certifications,
			Languages:      it.Criteria.Languages,
		},
		Status:          entities.ServiceRequestStatus(it.Status),
		TaskDescription: it.TaskDescription,
		OfferDeadline:   parseTimePtr(it.OfferDeadline),
		ProcessID:       it.ProcessID,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
		Version:         it.Version,
	}
}

func toServiceOfferItem(o entities.ServiceOffer) serviceOfferItem {
	return serviceOfferItem{
		ID:               o.ID,
		ExternalID:       o.ExternalID,
		ServiceRequestID: o.ServiceRequestID,
		ProviderID:       o.ProviderID,
		ProviderName:     o.ProviderName,
		SpecialistID:     o.SpecialistID,
		SpecialistName:   o.SpecialistName,
		Status:           string(o.Status),
		DailyRate:        o.DailyRate.String(),
		TravelCost:       o.TravelCost.String(),
		TotalCost:        o.TotalCost.String(),
		Notes:            o.Notes,
		CreatedAt:        formatTime(o.CreatedAt),
		UpdatedAt:        formatTime(o.UpdatedAt),
		Version:          o.Version,
	}
}

func fromServiceOfferItem(it serviceOfferItem) entities.ServiceOffer {
	return entities.ServiceOffer{
		ID:               it.ID,
		ExternalID:       it.ExternalID,
		ServiceRequestID: it.ServiceRequestID,
		ProviderID:       it.ProviderID,
		ProviderName:     it.ProviderName,
		SpecialistID:     it.SpecialistID,
		SpecialistName:   it.SpecialistName,
		Status:           entities.ServiceOfferStatus(it.Status),
		DailyRate:        parseDecimal(it.DailyRate),
		TravelCost:       parseDecimal(it.TravelCost),
		TotalCost:        parseDecimal(it.TotalCost),
		Notes:            it.Notes,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
		Version:          it.Version,
	}
}

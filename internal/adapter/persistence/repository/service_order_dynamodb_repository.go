package repository

import (
	"context"
	"sort"

	"staffing_service/internal/domain/entities"
	"staffing_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultServiceOrdersTableName = "service_orders"

type serviceOrderItem struct {
	ID                     string `dynamodbav:"id"`
	ServiceRequestID       string `dynamodbav:"service_request_id"`
	WinningOfferID         string `dynamodbav:"winning_offer_id"`
	SupplierID             string `dynamodbav:"supplier_id"`
	SupplierName           string `dynamodbav:"supplier_name"`
	Title                  string `dynamodbav:"title"`
	Role                   string `dynamodbav:"role"`
	Domain                 string `dynamodbav:"domain"`
	Status                 string `dynamodbav:"status"`
	StartDate              string `dynamodbav:"start_date"`
	OriginalEndDate        string `dynamodbav:"original_end_date"`
	CurrentEndDate         string `dynamodbav:"current_end_date"`
	ActualEndDate          string `dynamodbav:"actual_end_date,omitempty"`
	OriginalSpecialistID   string `dynamodbav:"original_specialist_id"`
	OriginalSpecialistName string `dynamodbav:"original_specialist_name"`
	CurrentSpecialistID    string `dynamodbav:"current_specialist_id"`
	CurrentSpecialistName  string `dynamodbav:"current_specialist_name"`
	OriginalManDays        int    `dynamodbav:"original_man_days"`
	CurrentManDays         int    `dynamodbav:"current_man_days"`
	DailyRate              string `dynamodbav:"daily_rate"`
	OriginalContractValue  string `dynamodbav:"original_contract_value"`
	CurrentContractValue   string `dynamodbav:"current_contract_value"`
	Notes                  string `dynamodbav:"notes"`
	CreatedAt              string `dynamodbav:"created_at"`
	UpdatedAt              string `dynamodbav:"updated_at"`
	Version                int64  `dynamodbav:"version"`
}

// ServiceOrderDynamoRepository persists ServiceOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Every write is conditional on the version attribute.
type ServiceOrderDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb dynamoAPI) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_ORDERS_TABLE", defaultServiceOrdersTableName),
	}
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	o.Version = 1
	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if err := conditionalPut(ctx, r.ddb, r.tableName, av, 0); err != nil {
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	item, err := getItem(ctx, r.ddb, r.tableName, id)
	if err != nil || len(item) == 0 {
		return entities.ServiceOrder{}, err
	}
	return unmarshalServiceOrder(item)
}

// List scans the table and filters in process. Substring and search filters
// have no DynamoDB equivalent that would avoid the scan.
func (r *ServiceOrderDynamoRepository) List(ctx context.Context, filter entities.ServiceOrderFilter) ([]entities.ServiceOrder, error) {
	attr, value := "", ""
	switch {
	case filter.WinningOfferID != "":
		attr, value = "winning_offer_id", filter.WinningOfferID
	case filter.Status != "":
		attr, value = "status", string(filter.Status)
	}
	items, err := scanAll(ctx, r.ddb, r.tableName, attr, value)
	if err != nil {
		return nil, err
	}

	out := make([]entities.ServiceOrder, 0, len(items))
	for _, item := range items {
		o, err := unmarshalServiceOrder(item)
		if err != nil {
			return nil, err
		}
		if filter.Matches(o) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *ServiceOrderDynamoRepository) Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	read := o.Version
	o.Version++
	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if err := conditionalPut(ctx, r.ddb, r.tableName, av, read); err != nil {
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func unmarshalServiceOrder(item map[string]types.AttributeValue) (entities.ServiceOrder, error) {
	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	return serviceOrderItem{
		ID:                     o.ID,
		ServiceRequestID:       o.ServiceRequestID,
		WinningOfferID:         o.WinningOfferID,
		SupplierID:             o.SupplierID,
		SupplierName:           o.SupplierName,
		Title:                  o.Title,
		Role:                   o.Role,
		Domain:                 o.Domain,
		Status:                 string(o.Status),
		StartDate:              formatTime(o.StartDate),
		OriginalEndDate:        formatTime(o.OriginalEndDate),
		CurrentEndDate:         formatTime(o.CurrentEndDate),
		ActualEndDate:          formatTimePtr(o.ActualEndDate),
		OriginalSpecialistID:   o.OriginalSpecialistID,
		OriginalSpecialistName: o.OriginalSpecialistName,
		CurrentSpecialistID:    o.CurrentSpecialistID,
		CurrentSpecialistName:  o.CurrentSpecialistName,
		OriginalManDays:        o.OriginalManDays,
		CurrentManDays:         o.CurrentManDays,
		DailyRate:              o.DailyRate.String(),
		OriginalContractValue:  o.OriginalContractValue.String(),
		CurrentContractValue:   o.CurrentContractValue.String(),
		Notes:                  o.Notes,
		CreatedAt:              formatTime(o.CreatedAt),
		UpdatedAt:              formatTime(o.UpdatedAt),
		Version:                o.Version,
	}
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:                     it.ID,
		ServiceRequestID:       it.ServiceRequestID,
		WinningOfferID:         it.WinningOfferID,
		SupplierID:             it.SupplierID,
		SupplierName:           it.SupplierName,
		Title:                  it.Title,
		Role:                   it.Role,
		Domain:                 it.Domain,
		Status:                 entities.ServiceOrderStatus(it.Status),
		StartDate:              parseTime(it.StartDate),
		OriginalEndDate:        parseTime(it.OriginalEndDate),
		CurrentEndDate:         parseTime(it.CurrentEndDate),
		ActualEndDate:          parseTimePtr(it.ActualEndDate),
		OriginalSpecialistID:   it.OriginalSpecialistID,
		OriginalSpecialistName: it.OriginalSpecialistName,
		CurrentSpecialistID:    it.CurrentSpecialistID,
		CurrentSpecialistName:  it.CurrentSpecialistName,
		OriginalManDays:        it.OriginalManDays,
		CurrentManDays:         it.CurrentManDays,
		DailyRate:              parseDecimal(it.DailyRate),
		OriginalContractValue:  parseDecimal(it.OriginalContractValue),
		CurrentContractValue:   parseDecimal(it.CurrentContractValue),
		Notes:                  it.Notes,
		CreatedAt:              parseTime(it.CreatedAt),
		UpdatedAt:              parseTime(it.UpdatedAt),
		Version:                it.Version,
	}
}

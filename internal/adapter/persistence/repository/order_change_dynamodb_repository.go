package repository

import (
	"context"
	"sort"

	"staffing_service/internal/domain/entities"
	"staffing_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultExtensionsTableName    = "service_order_extensions"
	defaultSubstitutionsTableName = "service_order_substitutions"
)

type extensionItem struct {
	ID                string `dynamodbav:"id"`
	ServiceOrderID    string `dynamodbav:"service_order_id"`
	Status            string `dynamodbav:"status"`
	AdditionalManDays int    `dynamodbav:"additional_man_days"`
	NewEndDate        string `dynamodbav:"new_end_date"`
	AdditionalCost    string `dynamodbav:"additional_cost"`
	Reason            string `dynamodbav:"reason"`
	RejectionReason   string `dynamodbav:"rejection_reason,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
	Version           int64  `dynamodbav:"version"`
}

type substitutionItem struct {
	ID                          string `dynamodbav:"id"`
	ServiceOrderID              string `dynamodbav:"service_order_id"`
	InitiatedBy                 string `dynamodbav:"initiated_by"`
	Status                      string `dynamodbav:"status"`
	OutgoingSpecialistID        string `dynamodbav:"outgoing_specialist_id"`
	OutgoingSpecialistName      string `dynamodbav:"outgoing_specialist_name"`
	IncomingSpecialistID        string `dynamodbav:"incoming_specialist_id"`
	IncomingSpecialistName      string `dynamodbav:"incoming_specialist_name"`
	IncomingSpecialistDailyRate string `dynamodbav:"incoming_specialist_daily_rate"`
	Reason                      string `dynamodbav:"reason"`
	ReasonDetails               string `dynamodbav:"reason_details,omitempty"`
	RejectionReason             string `dynamodbav:"rejection_reason,omitempty"`
	CreatedAt                   string `dynamodbav:"created_at"`
	UpdatedAt                   string `dynamodbav:"updated_at"`
	Version                     int64  `dynamodbav:"version"`
}

// OrderChangeDynamoRepository stores extensions and substitutions and commits
// them together with their service order in one TransactWriteItems call.
//
// Table requirements (both tables):
//   - PK: id (string)
//   - service_order_id attribute, scanned for per-order listings
type OrderChangeDynamoRepository struct {
	ddb                dynamoAPI
	ordersTable        string
	extensionsTable    string
	substitutionsTable string
}

var (
	_ interfaces.IOrderChangeCommitter   = (*OrderChangeDynamoRepository)(nil)
	_ interfaces.IExtensionRepository    = ExtensionDynamoRepository{}
	_ interfaces.ISubstitutionRepository = SubstitutionDynamoRepository{}
)

func NewOrderChangeDynamoRepository(ddb dynamoAPI) *OrderChangeDynamoRepository {
	return &OrderChangeDynamoRepository{
		ddb:                ddb,
		ordersTable:        getenvDefault("SERVICE_ORDERS_TABLE", defaultServiceOrdersTableName),
		extensionsTable:    getenvDefault("EXTENSIONS_TABLE", defaultExtensionsTableName),
		substitutionsTable: getenvDefault("SUBSTITUTIONS_TABLE", defaultSubstitutionsTableName),
	}
}

func (r *OrderChangeDynamoRepository) Extensions() ExtensionDynamoRepository {
	return ExtensionDynamoRepository{r: r}
}

func (r *OrderChangeDynamoRepository) Substitutions() SubstitutionDynamoRepository {
	return SubstitutionDynamoRepository{r: r}
}

func (r *OrderChangeDynamoRepository) CommitExtension(ctx context.Context, order entities.ServiceOrder, ext entities.ServiceOrderExtension) (entities.ServiceOrder, entities.ServiceOrderExtension, error) {
	readOrder, readExt := order.Version, ext.Version
	order.Version++
	ext.Version++

	orderAV, err := attributevalue.MarshalMap(toServiceOrderItem(order))
	if err != nil {
		return entities.ServiceOrder{}, entities.ServiceOrderExtension{}, err
	}
	extAV, err := attributevalue.MarshalMap(toExtensionItem(ext))
	if err != nil {
		return entities.ServiceOrder{}, entities.ServiceOrderExtension{}, err
	}
	if err := r.commit(ctx,
		transactPut(r.ordersTable, orderAV, readOrder),
		transactPut(r.extensionsTable, extAV, readExt),
	); err != nil {
		return entities.ServiceOrder{}, entities.ServiceOrderExtension{}, err
	}
	return order, ext, nil
}

func (r *OrderChangeDynamoRepository) CommitSubstitution(ctx context.Context, order entities.ServiceOrder, sub entities.ServiceOrderSubstitution) (entities.ServiceOrder, entities.ServiceOrderSubstitution, error) {
	readOrder, readSub := order.Version, sub.Version
	order.Version++
	sub.Version++

	orderAV, err := attributevalue.MarshalMap(toServiceOrderItem(order))
	if err != nil {
		return entities.ServiceOrder{}, entities.ServiceOrderSubstitution{}, err
	}
	subAV, err := attributevalue.MarshalMap(toSubstitutionItem(sub))
	if err != nil {
		return entities.ServiceOrder{}, entities.ServiceOrderSubstitution{}, err
	}
	if err := r.commit(ctx,
		transactPut(r.ordersTable, orderAV, readOrder),
		transactPut(r.substitutionsTable, subAV, readSub),
	); err != nil {
		return entities.ServiceOrder{}, entities.ServiceOrderSubstitution{}, err
	}
	return order, sub, nil
}

func (r *OrderChangeDynamoRepository) commit(ctx context.Context, items ...types.TransactWriteItem) error {
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	return translateWriteError(err)
}

type ExtensionDynamoRepository struct{ r *OrderChangeDynamoRepository }

func (e ExtensionDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrderExtension, error) {
	item, err := getItem(ctx, e.r.ddb, e.r.extensionsTable, id)
	if err != nil || len(item) == 0 {
		return entities.ServiceOrderExtension{}, err
	}
	var it extensionItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.ServiceOrderExtension{}, err
	}
	return fromExtensionItem(it), nil
}

func (e ExtensionDynamoRepository) ListByServiceOrderID(ctx context.Context, serviceOrderID string) ([]entities.ServiceOrderExtension, error) {
	items, err := scanAll(ctx, e.r.ddb, e.r.extensionsTable, "service_order_id", serviceOrderID)
	if err != nil {
		return nil, err
	}
	var its []extensionItem
	if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
		return nil, err
	}
	out := make([]entities.ServiceOrderExtension, 0, len(its))
	for _, it := range its {
		out = append(out, fromExtensionItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type SubstitutionDynamoRepository struct{ r *OrderChangeDynamoRepository }

func (s SubstitutionDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrderSubstitution, error) {
	item, err := getItem(ctx, s.r.ddb, s.r.substitutionsTable, id)
	if err != nil || len(item) == 0 {
		return entities.ServiceOrderSubstitution{}, err
	}
	var it substitutionItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.ServiceOrderSubstitution{}, err
	}
	return fromSubstitutionItem(it), nil
}

func (s SubstitutionDynamoRepository) ListByServiceOrderID(ctx context.Context, serviceOrderID string) ([]entities.ServiceOrderSubstitution, error) {
	items, err := scanAll(ctx, s.r.ddb, s.r.substitutionsTable, "service_order_id", serviceOrderID)
	if err != nil {
		return nil, err
	}
	var its []substitutionItem
	if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
		return nil, err
	}
	out := make([]entities.ServiceOrderSubstitution, 0, len(its))
	for _, it := range its {
		out = append(out, fromSubstitutionItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func toExtensionItem(e entities.ServiceOrderExtension) extensionItem {
	return extensionItem{
		ID:                e.ID,
		ServiceOrderID:    e.ServiceOrderID,
		Status:            string(e.Status),
		AdditionalManDays: e.AdditionalManDays,
		NewEndDate:        formatTime(e.NewEndDate),
		AdditionalCost:    e.AdditionalCost.String(),
		Reason:            e.Reason,
		RejectionReason:   e.RejectionReason,
		CreatedAt:         formatTime(e.CreatedAt),
		UpdatedAt:         formatTime(e.UpdatedAt),
		Version:           e.Version,
	}
}

func fromExtensionItem(it extensionItem) entities.ServiceOrderExtension {
	return entities.ServiceOrderExtension{
		ID:                it.ID,
		ServiceOrderID:    it.ServiceOrderID,
		Status:            entities.ApprovalStatus(it.Status),
		AdditionalManDays: it.AdditionalManDays,
		NewEndDate:        parseTime(it.NewEndDate),
		AdditionalCost:    parseDecimal(it.AdditionalCost),
		Reason:            it.Reason,
		RejectionReason:   it.RejectionReason,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
		Version:           it.Version,
	}
}

func toSubstitutionItem(s entities.ServiceOrderSubstitution) substitutionItem {
	return substitutionItem{
		ID:                          s.ID,
		ServiceOrderID:              s.ServiceOrderID,
		InitiatedBy:                 string(s.InitiatedBy),
		Status:                      string(s.Status),
		OutgoingSpecialistID:        s.OutgoingSpecialistID,
		OutgoingSpecialistName:      s.OutgoingSpecialistName,
		IncomingSpecialistID:        s.IncomingSpecialistID,
		IncomingSpecialistName:      s.IncomingSpecialistName,
		IncomingSpecialistDailyRate: s.IncomingSpecialistDailyRate.String(),
		Reason:                      string(s.Reason),
		ReasonDetails:               s.ReasonDetails,
		RejectionReason:             s.RejectionReason,
		CreatedAt:                   formatTime(s.CreatedAt),
		UpdatedAt:                   formatTime(s.UpdatedAt),
		Version:                     s.Version,
	}
}

func fromSubstitutionItem(it substitutionItem) entities.ServiceOrderSubstitution {
	return entities.ServiceOrderSubstitution{
		ID:                          it.ID,
		ServiceOrderID:              it.ServiceOrderID,
		InitiatedBy:                 entities.SubstitutionInitiator(it.InitiatedBy),
		Status:                      entities.ApprovalStatus(it.Status),
		OutgoingSpecialistID:        it.OutgoingSpecialistID,
		OutgoingSpecialistName:      it.OutgoingSpecialistName,
		IncomingSpecialistID:        it.IncomingSpecialistID,
		IncomingSpecialistName:      it.IncomingSpecialistName,
		IncomingSpecialistDailyRate: parseDecimal(it.IncomingSpecialistDailyRate),
		Reason:                      entities.SubstitutionReason(it.Reason),
		ReasonDetails:               it.ReasonDetails,
		RejectionReason:             it.RejectionReason,
		CreatedAt:                   parseTime(it.CreatedAt),
		UpdatedAt:                   parseTime(it.UpdatedAt),
		Version:                     it.Version,
	}
}

package schedulingRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"planora/models"
)

// MongoSchedulingRepo implements the scheduling repositories against
// MongoDB.
type MongoSchedulingRepo struct {
	projectColl *mongo.Collection
	memberColl  *mongo.Collection
	bookingColl *mongo.Collection
	timeout     time.Duration
}

func NewMongoSchedulingRepo(projects, members, bookings *mongo.Collection, timeout time.Duration) *MongoSchedulingRepo {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &MongoSchedulingRepo{
		projectColl: projects,
		memberColl:  members,
		bookingColl: bookings,
		timeout:     timeout,
	}
}

func (repo *MongoSchedulingRepo) GetByID(ctx context.Context, id string) (*models.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	var project models.Project
	if err := repo.projectColl.FindOne(ctx, bson.M{"id": id}).Decode(&project); err != nil {
		return nil, fmt.Errorf("failed to fetch project %s: %w", id, err)
	}
	return &project, nil
}

func (repo *MongoSchedulingRepo) GetMembers(ctx context.Context, ids []string) ([]models.TeamMember, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	cur, err := repo.memberColl.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch team members: %w", err)
	}
	defer cur.Close(ctx)

	var members []models.TeamMember
	if err := cur.All(ctx, &members); err != nil {
		return nil, fmt.Errorf("failed to decode team members: %w", err)
	}
	return members, nil
}

func (repo *MongoSchedulingRepo) GetCompanyCalendar(ctx context.Context, professionalID string) (*models.CompanyCalendar, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	var doc struct {
		Company models.CompanyCalendar `bson:"company"`
	}
	err := repo.memberColl.FindOne(ctx, bson.M{"id": professionalID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return &models.CompanyCalendar{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch company calendar for %s: %w", professionalID, err)
	}
	return &doc.Company, nil
}

// bookingDoc carries both the canonical and the legacy field names still
// present on older booking records.
type bookingDoc struct {
	ID                    string               `bson:"id"`
	ProjectID             string               `bson:"projectId"`
	ProfessionalID        string               `bson:"professionalId"`
	Status                models.BookingStatus `bson:"status"`
	ScheduledStart        *time.Time           `bson:"scheduledStartDate"`
	StartDate             *time.Time           `bson:"startDate"` // legacy
	ScheduledExecutionEnd *time.Time           `bson:"scheduledExecutionEndDate"`
	EndDate               *time.Time           `bson:"endDate"` // legacy
	ScheduledBufferStart  *time.Time           `bson:"scheduledBufferStartDate"`
	ScheduledBufferEnd    *time.Time           `bson:"scheduledBufferEndDate"`
	BufferDate            *time.Time           `bson:"bufferDate"` // legacy
	AssignedTeamMemberIDs []string             `bson:"assignedTeamMemberIds"`
}

// normalize folds the legacy duplicates into the canonical fields so the
// engine never branches on which field name is present.
func (d *bookingDoc) normalize() models.Booking {
	b := models.Booking{
		ID:                    d.ID,
		ProjectID:             d.ProjectID,
		ProfessionalID:        d.ProfessionalID,
		Status:                d.Status,
		ScheduledStart:        d.ScheduledStart,
		ScheduledExecutionEnd: d.ScheduledExecutionEnd,
		ScheduledBufferStart:  d.ScheduledBufferStart,
		ScheduledBufferEnd:    d.ScheduledBufferEnd,
		AssignedTeamMemberIDs: d.AssignedTeamMemberIDs,
	}
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.ScheduledStart == nil {
		b.ScheduledStart = d.StartDate
	}
	if b.ScheduledExecutionEnd == nil {
		b.ScheduledExecutionEnd = d.EndDate
	}
	if b.ScheduledBufferEnd == nil {
		b.ScheduledBufferEnd = d.BufferDate
	}
	return b
}

func (repo *MongoSchedulingRepo) GetActive(ctx context.Context, projectID string, memberIDs []string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	filter := bson.M{
		"status": bson.M{"$nin": bson.A{
			models.BookingCompleted, models.BookingCancelled, models.BookingRefunded,
		}},
		"$or": bson.A{
			bson.M{"projectId": projectID},
			bson.M{"assignedTeamMemberIds": bson.M{"$in": memberIDs}},
			bson.M{"professionalId": bson.M{"$in": memberIDs}},
		},
	}
	cur, err := repo.bookingColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active bookings: %w", err)
	}
	defer cur.Close(ctx)

	var docs []bookingDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	bookings := make([]models.Booking, 0, len(docs))
	for i := range docs {
		b := docs[i].normalize()
		if b.Active() {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

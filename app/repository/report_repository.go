package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReportFilter menentukan scope data statistik aktivitas:
// - ProjectIDs nil     => semua project
// - ProjectIDs non-nil => hanya aktivitas project tersebut (string UUID);
//   slice kosong berarti tidak ada project yang boleh dilihat
type ReportFilter struct {
	ProjectIDs []string
}

// ProjectActivityCount agregat per project (untuk project paling aktif).
type ProjectActivityCount struct {
	ProjectID      string    `json:"projectId"`
	TotalActivity  int64     `json:"totalActivity"`
	LastActivityAt time.Time `json:"lastActivityAt"`
}

// ActivityReport hasil agregasi statistik aktivitas project.
type ActivityReport struct {
	TotalActivities    int64                  `json:"totalActivities"`
	TotalByAction      map[string]int64       `json:"totalByAction"`
	TotalByPeriod      map[string]int64       `json:"totalByPeriod"` // key: "YYYY-MM"
	MostActiveProjects []ProjectActivityCount `json:"mostActiveProjects"`
}

// ReportRepository menangani query statistik ke MongoDB.
type ReportRepository interface {
	GetActivityStatistics(ctx context.Context, filter ReportFilter) (*ActivityReport, error)
}

// reportRepository implementasi konkrit ReportRepository.
type reportRepository struct {
	mongo *mongo.Database
}

// NewReportRepository membuat instance baru reportRepository.
func NewReportRepository(mongoDB *mongo.Database) ReportRepository {
	return &reportRepository{mongo: mongoDB}
}

func buildMatchFilter(filter ReportFilter) bson.M {
	match := bson.M{}
	if filter.ProjectIDs != nil {
		match["projectId"] = bson.M{"$in": filter.ProjectIDs}
	}
	return match
}

// countBy menjalankan pipeline group-by sederhana dan mengisi map hasil.
func countBy(ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline, out map[string]int64) error {
	cur, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var row struct {
			ID    string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return err
		}
		if row.ID == "" {
			row.ID = "unknown"
		}
		out[row.ID] = row.Count
	}
	return cur.Err()
}

// GetActivityStatistics menjalankan beberapa agregasi di MongoDB:
// - totalActivities
// - totalByAction
// - totalByPeriod (YYYY-MM dari createdAt)
// - mostActiveProjects (10 project dengan aktivitas terbanyak)
func (r *reportRepository) GetActivityStatistics(ctx context.Context, filter ReportFilter) (*ActivityReport, error) {
	result := &ActivityReport{
		TotalByAction:      make(map[string]int64),
		TotalByPeriod:      make(map[string]int64),
		MostActiveProjects: []ProjectActivityCount{},
	}
	if filter.ProjectIDs != nil && len(filter.ProjectIDs) == 0 {
		return result, nil
	}

	coll := r.mongo.Collection(activityCollection)
	match := buildMatchFilter(filter)

	// =========================
	// 1) Total aktivitas
	// =========================
	total, err := coll.CountDocuments(ctx, match)
	if err != nil {
		return nil, errors.Wrap(err, "count activities")
	}
	result.TotalActivities = total

	// =========================
	// 2) Total per action
	// =========================
	actionPipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$action",
			"count": bson.M{"$sum": 1},
		}}},
	}
	if err := countBy(ctx, coll, actionPipeline, result.TotalByAction); err != nil {
		return nil, errors.Wrap(err, "aggregate by action")
	}

	// =========================
	// 3) Total per periode (YYYY-MM dari createdAt)
	// =========================
	periodPipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"$dateToString": bson.M{
					"format": "%Y-%m",
					"date":   "$createdAt",
				},
			},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	if err := countBy(ctx, coll, periodPipeline, result.TotalByPeriod); err != nil {
		return nil, errors.Wrap(err, "aggregate by period")
	}

	// =========================
	// 4) Project paling aktif
	// =========================
	topPipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":            "$projectId",
			"totalActivity":  bson.M{"$sum": 1},
			"lastActivityAt": bson.M{"$max": "$createdAt"},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "totalActivity", Value: -1},
			{Key: "lastActivityAt", Value: -1},
		}}},
		{{Key: "$limit", Value: 10}},
	}
	cur, err := coll.Aggregate(ctx, topPipeline)
	if err != nil {
		return nil, errors.Wrap(err, "aggregate most active projects")
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var row struct {
			ID             string    `bson:"_id"`
			TotalActivity  int64     `bson:"totalActivity"`
			LastActivityAt time.Time `bson:"lastActivityAt"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, errors.Wrap(err, "decode most active project")
		}
		if row.ID == "" {
			continue
		}
		result.MostActiveProjects = append(result.MostActiveProjects, ProjectActivityCount{
			ProjectID:      row.ID,
			TotalActivity:  row.TotalActivity,
			LastActivityAt: row.LastActivityAt,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate most active projects")
	}

	return result, nil
}

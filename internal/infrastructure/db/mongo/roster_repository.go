package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/DanielMb24/SchoolManager/internal/core/domain"
)

const (
	studentCollection = "students"
	teacherCollection = "teachers"
)

type mongoStudent struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Surname    string             `bson:"surname"`
	GivenName  string             `bson:"given_name"`
	Email      string             `bson:"email,omitempty"`
	Matricule  string             `bson:"matricule"`
	EnrolledAt int64              `bson:"enrolled_at"`
}

type mongoTeacher struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Surname   string             `bson:"surname"`
	GivenName string             `bson:"given_name"`
	Email     string             `bson:"email,omitempty"`
	Subject   string             `bson:"subject"`
	HiredAt   int64              `bson:"hired_at"`
}

// MongoStudentRepository persists student roster records.
type MongoStudentRepository struct {
	coll *mongo.Collection
}

func NewStudentRepository(db *mongo.Database) *MongoStudentRepository {
	return &MongoStudentRepository{coll: db.Collection(studentCollection)}
}

func (r *MongoStudentRepository) List(ctx context.Context) ([]domain.Student, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "surname", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer cur.Close(ctx)

	var students []domain.Student
	for cur.Next(ctx) {
		var ms mongoStudent
		if err := cur.Decode(&ms); err != nil {
			return nil, fmt.Errorf("decode student: %w", err)
		}
		students = append(students, domain.Student{
			ID:         ms.ID.Hex(),
			Surname:    ms.Surname,
			GivenName:  ms.GivenName,
			Email:      ms.Email,
			Matricule:  ms.Matricule,
			EnrolledAt: unixToTime(ms.EnrolledAt),
		})
	}
	return students, cur.Err()
}

func (r *MongoStudentRepository) Create(ctx context.Context, student *domain.Student) (string, error) {
	doc := mongoStudent{
		Surname:    student.Surname,
		GivenName:  student.GivenName,
		Email:      student.Email,
		Matricule:  student.Matricule,
		EnrolledAt: student.EnrolledAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert student: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert student: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *MongoStudentRepository) Update(ctx context.Context, student *domain.Student) error {
	oid, err := primitive.ObjectIDFromHex(student.ID)
	if err != nil {
		return domain.ErrStudentNotFound
	}

	doc := mongoStudent{
		ID:         oid,
		Surname:    student.Surname,
		GivenName:  student.GivenName,
		Email:      student.Email,
		Matricule:  student.Matricule,
		EnrolledAt: student.EnrolledAt.Unix(),
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return fmt.Errorf("update student: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrStudentNotFound
	}
	return nil
}

func (r *MongoStudentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrStudentNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrStudentNotFound
	}
	return nil
}

// MongoTeacherRepository persists teacher roster records.
type MongoTeacherRepository struct {
	coll *mongo.Collection
}

func NewTeacherRepository(db *mongo.Database) *MongoTeacherRepository {
	return &MongoTeacherRepository{coll: db.Collection(teacherCollection)}
}

func (r *MongoTeacherRepository) List(ctx context.Context) ([]domain.Teacher, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "surname", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	defer cur.Close(ctx)

	var teachers []domain.Teacher
	for cur.Next(ctx) {
		var mt mongoTeacher
		if err := cur.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode teacher: %w", err)
		}
		teachers = append(teachers, domain.Teacher{
			ID:        mt.ID.Hex(),
			Surname:   mt.Surname,
			GivenName: mt.GivenName,
			Email:     mt.Email,
			Subject:   mt.Subject,
			HiredAt:   unixToTime(mt.HiredAt),
		})
	}
	return teachers, cur.Err()
}

func (r *MongoTeacherRepository) Create(ctx context.Context, teacher *domain.Teacher) (string, error) {
	doc := mongoTeacher{
		Surname:   teacher.Surname,
		GivenName: teacher.GivenName,
		Email:     teacher.Email,
		Subject:   teacher.Subject,
		HiredAt:   teacher.HiredAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert teacher: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert teacher: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *MongoTeacherRepository) Update(ctx context.Context, teacher *domain.Teacher) error {
	oid, err := primitive.ObjectIDFromHex(teacher.ID)
	if err != nil {
		return domain.ErrTeacherNotFound
	}

	doc := mongoTeacher{
		ID:        oid,
		Surname:   teacher.Surname,
		GivenName: teacher.GivenName,
		Email:     teacher.Email,
		Subject:   teacher.Subject,
		HiredAt:   teacher.HiredAt.Unix(),
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return fmt.Errorf("update teacher: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTeacherNotFound
	}
	return nil
}

func (r *MongoTeacherRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTeacherNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete teacher: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTeacherNotFound
	}
	return nil
}

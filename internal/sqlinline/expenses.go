package sqlinline

const QSumCollected = `--sql 1d7b9e3a-5f2c-48d6-9a4e-7c0b2d8f6a13
select coalesce(sum(amount), 0)::bigint
from donations
where status = 'success';
`

const QSumSpent = `--sql 8e2a4c6f-0d9b-41e7-b3a5-6f1d8c2e9b47
select coalesce(sum(amount), 0)::bigint
from expenses;
`

const QInsertExpense = `--sql 3a9d5f7b-2e8c-46a0-8b4d-0f6e1a9c3d85
insert into expenses (id, title, amount, category, spent_at, description, created_at)
values (gen_random_uuid(), $1::text, $2::bigint, $3::text, $4::date, $5::text, now())
returning id, created_at;
`

const QListExpenses = `--sql d4f8b6e2-7a1c-49d3-a5e9-2c8f0b4d7e61
select id, title, amount, category, spent_at, description, created_at
from expenses
order by spent_at desc, created_at desc;
`
